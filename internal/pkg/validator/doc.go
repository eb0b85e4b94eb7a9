// Package validator checks tagged structs such as credential submissions and
// module dependencies.
//
// Callers depend on the Validator interface; V10Validator implements it with
// go-playground/validator v10, English messages and a notblank rule.
package validator
