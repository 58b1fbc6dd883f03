//go:build e2e

package message_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const messagesURL = "/api/messages"

type messageSuite struct {
	e2e.SharedSuite
}

func TestMessageSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(messageSuite))
}

func (s *messageSuite) send(token string, recipientID uuid.UUID, body string) *resdto.MessageResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL,
		request.SendMessageRequest{RecipientID: recipientID, Body: body}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.MessageResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return &res
}

func (s *messageSuite) TestConversation() {
	s.Run("ゲストとホストのやり取り", func() {
		t := s.T()
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
		hostID, hostToken := authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleHost))
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleGuest))

		first := s.send(guestToken, hostID, "Is early check-in possible?")
		require.False(t, first.IsRead)
		s.send(hostToken, guestID, "Yes, from 11am.")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/conversation/"+hostID.String(), nil, guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var convo resdto.MessageListResponse
		httptest.DecodeResponseBody(t, w.Body, &convo)
		require.Len(t, convo.Messages, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/"+first.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, w.Code, "第三者にメッセージが見えている")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL+"/"+first.ID.String()+"/read", nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, "送信者が既読にできてしまう")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL+"/"+first.ID.String()+"/read", nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var read resdto.MessageResponse
		httptest.DecodeResponseBody(t, w.Body, &read)
		require.True(t, read.IsRead)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL, nil, strangerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var strangerInbox resdto.MessageListResponse
		httptest.DecodeResponseBody(t, w.Body, &strangerInbox)
		require.Empty(t, strangerInbox.Messages)
	})

	s.Run("送信の検証", func() {
		t := s.T()
		guestID, guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		tests := []struct {
			name           string
			body           request.SendMessageRequest
			expectedStatus int
		}{
			{"自分宛て", request.SendMessageRequest{RecipientID: guestID, Body: "hi me"}, http.StatusBadRequest},
			{"存在しない宛先", request.SendMessageRequest{RecipientID: uuid.New(), Body: "hello?"}, http.StatusNotFound},
			{"空の本文", request.SendMessageRequest{RecipientID: uuid.New(), Body: "  "}, http.StatusBadRequest},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL, tt.body, guestToken)
			require.Equal(t, tt.expectedStatus, w.Code, tt.name+": "+w.Body.String())
		}
	})
}
