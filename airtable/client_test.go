package airtable

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExperiences(t *testing.T) {
	var gotPath, gotView, gotRawQuery, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotView = r.URL.Query().Get("view")
		gotRawQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[{"id":"rec1","fields":{"Experience_Name":"Robotics"}}]}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL+"/", "appBase", "Experiences", "pat-secret")
	body, err := c.ListExperiences(context.Background(), "Fiona - Portfolio")
	require.NoError(t, err)

	assert.JSONEq(t, `{"records":[{"id":"rec1","fields":{"Experience_Name":"Robotics"}}]}`, string(body))
	assert.Equal(t, "/v0/appBase/Experiences", gotPath)
	assert.Equal(t, "Fiona - Portfolio", gotView)
	assert.Equal(t, "view=Fiona%20-%20Portfolio", gotRawQuery)
	assert.Equal(t, "Bearer pat-secret", gotAuth)
}

func TestListExperiencesUpstreamError(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "appBase", "Experiences", "pat-secret")
	_, err := c.ListExperiences(context.Background(), "Hope - Portfolio")
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusServiceUnavailable, upErr.Status)
	assert.Equal(t, "Airtable API error: 503", err.Error())
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "no retry")
}

func TestListExperiencesWithoutToken(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "appBase", "Experiences", "")
	assert.False(t, c.Configured())

	_, err := c.ListExperiences(context.Background(), "Hope - Portfolio")
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestListURLEncodesView(t *testing.T) {
	c := NewClient("https://api.airtable.com", "appDxcv3BlLT1jkCL", "Experiences", "x")
	assert.Equal(t,
		"https://api.airtable.com/v0/appDxcv3BlLT1jkCL/Experiences?view=Olivia%20-%20Portfolio",
		c.ListURL("Olivia - Portfolio"))
	assert.Equal(t,
		"https://api.airtable.com/v0/appDxcv3BlLT1jkCL/Experiences?view=A%26B%2FC",
		c.ListURL("A&B/C"))
}

func TestListURLTrailingSlash(t *testing.T) {
	c := NewClient("https://api.airtable.com//", "appBase", "Experiences", "x")
	assert.Equal(t, "https://api.airtable.com", c.BaseURL)
	assert.Equal(t, "https://api.airtable.com/v0/appBase/Experiences?view=Hope",
		c.ListURL("Hope"))
}

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecords([]byte(`{"records":[{"id":"rec1","fields":{"Total_Hours":3}}]}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(3), records[0].Fields.Number("Total_Hours"))

	records, err = DecodeRecords([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = DecodeRecords([]byte(`[`))
	assert.Error(t, err)
}
