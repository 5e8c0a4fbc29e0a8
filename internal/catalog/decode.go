package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mira-academy/catalog/internal/models"
	appErrors "github.com/mira-academy/catalog/pkg/errors"
)

func fetchCourses(ctx context.Context, client *http.Client, url string) ([]models.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, 0, appErrors.ErrUpstream.Message)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, 0, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, appErrors.RequestFailed(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, 0, appErrors.ErrUpstream.Message)
	}

	return decodeCourses(body)
}

// decodeCourses accepts either a bare array of course objects or an object
// wrapping the array under "courses". Any other valid payload decodes to an
// empty list rather than an error; only malformed JSON fails.
func decodeCourses(body []byte) ([]models.Course, error) {
	var direct []models.Course
	if err := json.Unmarshal(body, &direct); err == nil && direct != nil {
		return direct, nil
	}

	var wrapped struct {
		Courses []models.Course `json:"courses"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Courses != nil {
		return wrapped.Courses, nil
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrBadPayload.Code, 0, appErrors.ErrBadPayload.Message)
	}
	return []models.Course{}, nil
}
