package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestScrape_ServidorOK(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(catalogPage))
	}))
	defer srv.Close()

	s := New(Config{}, nil)
	got, err := s.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestFetch_StatusNo2xx_ErrFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "weg", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(Config{}, nil).Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestFetch_Timeout_ErrFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := New(Config{Timeout: 50 * time.Millisecond}, nil).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetch_URLInvalida_ErrFetch(t *testing.T) {
	_, err := New(Config{}, nil).Fetch(context.Background(), "http://127.0.0.1:0/nada")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetch_DecodificaLatin1(t *testing.T) {
	body, err := charmap.ISO8859_1.NewEncoder().String(`<div class="product" data-sku="5">Bevestiging für Wand</div>`)
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := New(Config{}, nil).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bevestiging für Wand", got[0].Name)
}
