package inbound

import (
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/gate"
	"github.com/shandysiswandi/otpgate/internal/auth/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc     uc
	gate   gateTrigger
	stream eventStream
}

// StartSession submits credentials and requests a verification code.
// @Summary Submit credentials
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Credential payload"
// @Success 202 {object} router.successResponse{data=SessionResponse} "Code is being sent"
// @Failure 403 {object} router.errorResponse "Security verification not passed"
// @Failure 409 {object} router.errorResponse "A code is already being sent"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/auth/credentials [post]
func (h *HTTPEndpoint) StartSession(r *router.Request) (any, error) {
	var req StartSessionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	s, err := h.uc.StartSession(r.Context(), usecase.StartSessionInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return newAcceptedResponse(s, "Sending verification code"), nil
}

// GetSession returns the current verification session.
// @Summary Get session
// @Tags Auth
// @Produce json
// @Success 200 {object} router.successResponse{data=SessionResponse} "Session snapshot"
// @Router /api/v1/auth/session [get]
func (h *HTTPEndpoint) GetSession(r *router.Request) (any, error) {
	return newSessionResponse(h.uc.Snapshot(r.Context()), "Verification session"), nil
}

// DeleteSession abandons the current verification session.
// @Summary Discard session
// @Tags Auth
// @Success 204 "No Content"
// @Router /api/v1/auth/session [delete]
func (h *HTTPEndpoint) DeleteSession(r *router.Request) (any, error) {
	h.uc.Teardown(r.Context())
	return nil, nil
}

func (h *HTTPEndpoint) SetDigit(r *router.Request) (any, error) {
	index, err := r.GetParamInt("index")
	if err != nil {
		return nil, err
	}

	var req SetDigitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	s, err := h.uc.SetDigit(r.Context(), usecase.SetDigitInput{Index: index, Value: req.Value})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(s, "Digit updated"), nil
}

func (h *HTTPEndpoint) Backspace(r *router.Request) (any, error) {
	index, err := r.GetParamInt("index")
	if err != nil {
		return nil, err
	}

	s, err := h.uc.Backspace(r.Context(), usecase.BackspaceInput{Index: index})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(s, "Digit cleared"), nil
}

func (h *HTTPEndpoint) Navigate(r *router.Request) (any, error) {
	index, err := r.GetParamInt("index")
	if err != nil {
		return nil, err
	}

	var req NavigateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	s, err := h.uc.Navigate(r.Context(), usecase.NavigateInput{Index: index, Direction: req.Direction})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(s, "Focus moved"), nil
}

func (h *HTTPEndpoint) Paste(r *router.Request) (any, error) {
	var req PasteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	s, err := h.uc.Paste(r.Context(), usecase.PasteInput{Text: req.Text})
	if err != nil {
		return nil, err
	}

	return newSessionResponse(s, "Code pasted"), nil
}

// Verify submits the entered code.
// @Summary Verify code
// @Tags Auth
// @Produce json
// @Success 202 {object} router.successResponse{data=SessionResponse} "Code is being verified"
// @Failure 404 {object} router.errorResponse "No verification in progress"
// @Failure 408 {object} router.errorResponse "Code expired"
// @Failure 409 {object} router.errorResponse "Verification already in progress"
// @Failure 422 {object} router.errorResponse "Code incomplete"
// @Router /api/v1/auth/session/verify [post]
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	s, err := h.uc.Verify(r.Context())
	if err != nil {
		return nil, err
	}

	return newAcceptedResponse(s, "Verifying code"), nil
}

// Resend issues a new code once the cooldown is over.
// @Summary Resend code
// @Tags Auth
// @Produce json
// @Success 200 {object} router.successResponse{data=SessionResponse} "New code sent"
// @Failure 429 {object} router.errorResponse "Cooldown still running"
// @Router /api/v1/auth/session/resend [post]
func (h *HTTPEndpoint) Resend(r *router.Request) (any, error) {
	s, err := h.uc.Resend(r.Context())
	if err != nil {
		return nil, err
	}

	return newSessionResponse(s, "New code sent"), nil
}

// GateEvent receives the outcome of the security challenge.
// @Summary Security verification callback
// @Tags Auth
// @Param event path string true "passed, expired or failed"
// @Success 200 {object} router.successResponse{data=GateEventResponse} "Outcome recorded"
// @Failure 400 {object} router.errorResponse "Unknown event"
// @Router /api/v1/auth/gate/{event} [post]
func (h *HTTPEndpoint) GateEvent(r *router.Request) (any, error) {
	evt, err := gate.ParseEvent(r.GetParam("event"))
	if err != nil {
		return nil, goerror.NewInvalidFormat("Unknown security verification event")
	}

	if err := h.gate.Fire(r.Context(), evt); err != nil {
		return nil, goerror.NewServer(err)
	}

	return GateEventResponse{Event: string(evt)}, nil
}
