package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListPages(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantPages         []Page
		wantError         bool
		wantErrorString   string
	}{
		{
			name: "single page listing",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/v1/courses/101/pages", r.URL.Path)
				assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
				assert.Equal(t, "100", r.URL.Query().Get("per_page"))

				w.Header().Set("Content-Type", "application/json")
				require.NoError(t, json.NewEncoder(w).Encode([]Page{
					{PageID: 11, URL: "week_1_4f2a", Title: "Week 1 4F2A"},
				}))
			},
			wantPages: []Page{
				{PageID: 11, URL: "week_1_4f2a", Title: "Week 1 4F2A"},
			},
		},
		{
			name: "client error is not retried",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, err := w.Write([]byte(`{"errors":[{"message":"not found"}]}`))
				require.NoError(t, err)
			},
			wantError:       true,
			wantErrorString: "status code: 404",
		},
		{
			name: "server error surfaces after retries run out",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantError:       true,
			wantErrorString: "status code: 500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "101", "token-123", 1)
			gotPages, gotErr := client.ListPages(context.Background())
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantPages, gotPages)
		})
	}
}

func TestClientListPagesPagination(t *testing.T) {
	var requests int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch atomic.AddInt32(&requests, 1) {
		case 1:
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/api/v1/courses/101/pages?page=2&per_page=100>; rel="next",<%s/api/v1/courses/101/pages?page=2&per_page=100>; rel="last"`,
				server.URL, server.URL,
			))
			require.NoError(t, json.NewEncoder(w).Encode([]Page{{PageID: 1, Title: "Week 1"}}))
		default:
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			require.NoError(t, json.NewEncoder(w).Encode([]Page{{PageID: 2, Title: "Week 2"}}))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "101", "token-123", 1)
	gotPages, gotErr := client.ListPages(context.Background())
	require.NoError(t, gotErr)
	assert.Equal(t, []Page{
		{PageID: 1, Title: "Week 1"},
		{PageID: 2, Title: "Week 2"},
	}, gotPages)
	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
}

func TestClientRetriesServerError(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode([]Assignment{{ID: 7, Name: "HW01"}}))
	}))
	defer server.Close()

	client := NewClient(server.URL, "101", "token-123", 1)
	gotAssignments, gotErr := client.ListAssignments(context.Background())
	require.NoError(t, gotErr)
	assert.Equal(t, []Assignment{{ID: 7, Name: "HW01"}}, gotAssignments)
	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
}

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name       string
		linkHeader string
		want       string
	}{
		{
			name:       "next in the middle of the header",
			linkHeader: `<https://canvas.test/api/v1/courses/101/pages?page=1&per_page=100>; rel="current",<https://canvas.test/api/v1/courses/101/pages?page=2&per_page=100>; rel="next",<https://canvas.test/api/v1/courses/101/pages?page=3&per_page=100>; rel="last"`,
			want:       "https://canvas.test/api/v1/courses/101/pages?page=2&per_page=100",
		},
		{
			name:       "whitespace after the comma",
			linkHeader: `<https://canvas.test/api?page=1>; rel="first", <https://canvas.test/api?page=2>; rel="next"`,
			want:       "https://canvas.test/api?page=2",
		},
		{
			name:       "no next link on the last page",
			linkHeader: `<https://canvas.test/api?page=3>; rel="current",<https://canvas.test/api?page=3>; rel="last"`,
			want:       "",
		},
		{
			name:       "empty header",
			linkHeader: "",
			want:       "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextPageURL(tt.linkHeader))
		})
	}
}

func TestClientCourseURLs(t *testing.T) {
	client := NewClient("https://umich.instructure.com/", "101", "token-123", 0)
	assert.Equal(t, "https://umich.instructure.com/courses/101/files/42/preview", client.FilePreviewURL(42))
	assert.Equal(t, "https://umich.instructure.com/courses/101/pages/week_1_4f2a", client.CoursePageURL("week_1_4f2a"))
}
