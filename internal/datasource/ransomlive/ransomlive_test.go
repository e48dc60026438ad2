// SPDX-FileCopyrightText: 2026 Bonial International GmbH
// SPDX-License-Identifier: Apache-2.0

package ransomlive

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "victim": "acme-corp.com",
    "group": "lockbit3",
    "discovered": "2023-01-05 10:11:12.000000",
    "activity": "Healthcare",
    "country": "US"
  },
  {
    "victim": "globex",
    "group": "lockbit3",
    "discovered": "2023-02-01 00:00:00.000000",
    "activity": "Finance",
    "country": "DE"
  }
]`

func TestNormalizeGroup(t *testing.T) {
	assert.Equal(t, "lockbit3", NormalizeGroup("  LockBit3 \n"))
	assert.Equal(t, "", NormalizeGroup("   "))
}

func TestGroupVictimsURL(t *testing.T) {
	s := NewSource("")
	assert.Equal(t, "https://api.ransomware.live/v2/groupvictims/lockbit3", s.GroupVictimsURL(" LockBit3 "))

	s = NewSource("http://mirror.local/v2/")
	assert.Equal(t, "http://mirror.local/v2/groupvictims/a%2Fb%20c", s.GroupVictimsURL("a/b c"))
}

func TestFetch_OK(t *testing.T) {
	var gotPath, gotAccept, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	s := NewSource(srv.URL+"/v2", WithHTTPClient(srv.Client()), WithUserAgent("ransomstats/test"))
	victims, err := s.Fetch(context.Background(), "  LockBit3 ")
	require.NoError(t, err)

	assert.Equal(t, "/v2/groupvictims/lockbit3", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "ransomstats/test", gotUA)

	require.Len(t, victims, 2)
	assert.Equal(t, "2023-01-05 10:11:12.000000", victims[0].Discovered)
	assert.Equal(t, "Healthcare", victims[0].Activity)
	assert.Equal(t, "DE", victims[1].Country)
	assert.Equal(t, "Finance", victims[1].Activity)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSource(srv.URL, WithHTTPClient(srv.Client()))
	victims, err := s.Fetch(context.Background(), "nosuchgroup")
	require.Error(t, err)
	assert.Nil(t, victims)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetch_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	s := NewSource(srv.URL, WithHTTPClient(srv.Client()))
	_, err := s.Fetch(context.Background(), "lockbit3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewSource(url)
	_, err := s.Fetch(context.Background(), "lockbit3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestFetch_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSource(srv.URL, WithHTTPClient(srv.Client()))
	_, err := s.Fetch(ctx, "lockbit3")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
