// internal/app/features/postapi/mail.go
package postapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/mailer"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleMail relays a notification email using the caller's own mail
// account. One synchronous attempt; the response is a flat success or
// fail indicator either way, always with a 200 status.
//
// POST /api/post/mail with {frommail, password, tomail, Subject, Body}
// The subject line is fixed; the caller's Subject travels as the text
// body and Body as the HTML body, matching what clients already send.
func (h *Handler) HandleMail(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Write(w, http.StatusOK, mailResponse{Msg: "fail"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Mail())
	defer cancel()

	err := h.Relay.Send(ctx,
		mailer.Credentials{Address: req.FromMail, Password: req.Password},
		mailer.Message{
			To:       req.ToMail,
			Subject:  "Food Management",
			TextBody: req.Subject,
			HTMLBody: req.Body,
		})
	if err != nil {
		h.Log.Error("mail relay failed", zap.Error(err))
		httpjson.Write(w, http.StatusOK, mailResponse{Msg: "fail"})
		return
	}

	httpjson.Write(w, http.StatusOK, mailResponse{Msg: "success"})
}
