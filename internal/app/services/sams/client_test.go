package sams

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/exceptions"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/sams_dto"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginHandler(t *testing.T, wantUser, wantPass string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, constvars.MethodPost, r.Method)
		require.Equal(t, constvars.MIMEApplicationForm, r.Header.Get(constvars.HeaderContentType))
		require.NoError(t, r.ParseForm())
		if r.FormValue(constvars.SamsFormFieldEmail) != wantUser || r.FormValue(constvars.SamsFormFieldPassword) != wantPass {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: constvars.SamsSessionCookieName, Value: "session-token", Path: "/"})
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLogin(t *testing.T) {
	t.Run("Success Sets Session Cookie", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.Handle(constvars.SamsLoginPath, loginHandler(t, "user", "pass"))
		server := httptest.NewServer(mux)
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		err := client.Login(context.Background(), "user", "pass")

		require.NoError(t, err)
		assert.True(t, client.IsLoggedIn())
	})

	t.Run("Rejected Credentials", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.Handle(constvars.SamsLoginPath, loginHandler(t, "user", "pass"))
		server := httptest.NewServer(mux)
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		err := client.Login(context.Background(), "user", "wrong")

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.False(t, client.IsLoggedIn())
	})

	t.Run("Server Unreachable", func(t *testing.T) {
		client := newSamsClient("http://127.0.0.1:1", nil)
		err := client.Login(context.Background(), "user", "pass")

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, constvars.ErrDevSendHTTPRequest)
	})
}

func TestLoginWithCredentialsFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(constvars.SamsLoginPath, loginHandler(t, "user", "pass"))
	server := httptest.NewServer(mux)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "credentials.txt")
	require.NoError(t, os.WriteFile(path, []byte("user\npass\n"), 0600))

	client := newSamsClient(server.URL, nil)
	err := client.LoginWithCredentialsFile(context.Background(), path)

	require.NoError(t, err)
	assert.True(t, client.IsLoggedIn())
}

func TestLoginWithProvider(t *testing.T) {
	t.Run("Empty Password Fails Before Any Request", func(t *testing.T) {
		requestCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
		}))
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		err := client.LoginWithProvider(context.Background(), StaticCredentials("user", ""))

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, 0, requestCount)
	})

	t.Run("Provider Error Propagates", func(t *testing.T) {
		client := newSamsClient("http://localhost", nil)
		err := client.LoginWithProvider(context.Background(), CredentialsFromFile(filepath.Join(t.TempDir(), "missing.txt")))

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "credentials file")
	})
}

func TestIsLoggedIn(t *testing.T) {
	client := newSamsClient("http://sams.example.org/sams-cgi", nil)

	assert.False(t, client.IsLoggedIn())

	base, err := url.Parse(client.BaseUrl)
	require.NoError(t, err)
	client.HttpClient.Jar.SetCookies(base, []*http.Cookie{
		{Name: constvars.SamsSessionCookieName, Value: "session-token", Path: "/"},
	})
	assert.True(t, client.IsLoggedIn())

	// Clearing the jar flips the predicate back without any network call.
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client.HttpClient.Jar = jar
	assert.False(t, client.IsLoggedIn())
}

func TestGetAllPhenopackets(t *testing.T) {
	t.Run("Decodes Export", func(t *testing.T) {
		packets := []sams_dto.Phenopacket{
			{Subject: sams_dto.Subject{ID: "patient1"}},
			{Subject: sams_dto.Subject{ID: "patient2"}, PhenotypicFeatures: []sams_dto.PhenotypicFeature{
				{Type: sams_dto.OntologyTerm{ID: "HP:0000001", Label: "Phenotype 1"}},
			}},
		}
		mux := http.NewServeMux()
		mux.HandleFunc(constvars.SamsExportAllPath, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "1", r.URL.Query().Get(constvars.SamsQueryExportAll))
			writeJSON(t, w, packets)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		got, err := client.GetAllPhenopackets(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "patient1", got[0].Subject.ID)
		assert.Equal(t, "HP:0000001", got[1].PhenotypicFeatures[0].Type.ID)
		assert.Nil(t, got[0].PhenotypicFeatures)
	})

	t.Run("Non Success Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		got, err := client.GetAllPhenopackets(context.Background())

		require.Error(t, err)
		assert.Nil(t, got)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		_, err := client.GetAllPhenopackets(context.Background())

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "decode")
	})
}

func TestGetPhenopacket(t *testing.T) {
	exportByID := func(t *testing.T, packet sams_dto.Phenopacket) *httptest.Server {
		mux := http.NewServeMux()
		mux.HandleFunc(constvars.SamsExportByIDPath, func(w http.ResponseWriter, r *http.Request) {
			require.NotEmpty(t, r.URL.Query().Get(constvars.SamsQueryExternalID))
			writeJSON(t, w, packet)
		})
		return httptest.NewServer(mux)
	}

	t.Run("Subject Matches Request", func(t *testing.T) {
		server := exportByID(t, sams_dto.Phenopacket{
			Subject:            sams_dto.Subject{ID: "patient1"},
			PhenotypicFeatures: []sams_dto.PhenotypicFeature{},
		})
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		packet, err := client.GetPhenopacket(context.Background(), "patient1")

		require.NoError(t, err)
		assert.Equal(t, "patient1", packet.Subject.ID)
	})

	t.Run("Subject Mismatch", func(t *testing.T) {
		server := exportByID(t, sams_dto.Phenopacket{Subject: sams_dto.Subject{ID: "other"}})
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		packet, err := client.GetPhenopacket(context.Background(), "patient1")

		require.Error(t, err)
		assert.Nil(t, packet)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Not Found Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newSamsClient(server.URL, nil)
		packet, err := client.GetPhenopacket(context.Background(), "patient1")

		require.Error(t, err)
		assert.Nil(t, packet)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
