package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwilioSenderSendSMS(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "AC123", user)
		require.Equal(t, "token123", pass)

		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM_test"}`))
	}))
	defer srv.Close()

	sender := &TwilioSender{
		AccountSID: "AC123",
		AuthToken:  "token123",
		From:       "+15550001111",
		BaseURL:    srv.URL,
	}

	sid, err := sender.SendSMS(context.Background(), "+919876543210", "Your OTP for mobile verification is 123456")
	require.NoError(t, err)
	require.Equal(t, "SM_test", sid)
	require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	require.Equal(t, "+919876543210", gotTo)
	require.Equal(t, "+15550001111", gotFrom)
	require.Contains(t, gotBody, "123456")
}

func TestTwilioSenderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	sender := &TwilioSender{
		AccountSID: "AC123",
		AuthToken:  "token123",
		From:       "+15550001111",
		BaseURL:    srv.URL,
	}

	_, err := sender.SendSMS(context.Background(), "bogus", "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a valid phone number")
}
