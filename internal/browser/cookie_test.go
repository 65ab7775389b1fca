package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieDomain(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
		wantErr bool
	}{
		{baseURL: "https://www.linkedin.com/", want: ".linkedin.com"},
		{baseURL: "https://linkedin.com", want: ".linkedin.com"},
		{baseURL: "http://localhost:8080/", want: ".localhost"},
		{baseURL: "not a url", wantErr: true},
		{baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			got, err := cookieDomain(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
