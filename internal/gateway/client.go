// Package gateway is the typed client for the university REST service.
// Every endpoint answers with a uniform envelope
// {"success": bool, "data"?: ..., "error"?: string}; a transport
// failure and a success=false response are both actionable errors,
// distinguished only by message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/reports"
)

// ConnectivityMessage is the generic user-facing message for transport
// failures; the real cause is wrapped underneath for logs.
const ConnectivityMessage = "Unable to reach the university service. Please try again."

// ErrTransport marks network or malformed-response failures.
var ErrTransport = errors.New("gateway transport failure")

// APIError is an application-level rejection: the service answered,
// but with success=false and a reason (section full, duplicate
// enrollment, unknown student...).
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// UserMessage extracts the message to show for a gateway error:
// application messages pass through verbatim, everything else becomes
// the generic connectivity message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ConnectivityMessage
}

// Service is the data-access boundary the console depends on. The
// TUI and CLI consume this interface; tests substitute fakes.
type Service interface {
	Students(ctx context.Context) ([]catalog.Student, error)
	Catalog(ctx context.Context) ([]catalog.Department, error)
	EnrolledCourses(ctx context.Context, studentID int) ([]catalog.EnrolledCourse, error)
	Schedule(ctx context.Context, studentID int) ([]catalog.EnrolledCourse, error)
	Enroll(ctx context.Context, studentID, sectionID int) error
	CancelEnrollment(ctx context.Context, studentID, sectionID int) error
	SectionUtilization(ctx context.Context) ([]reports.SectionUtilization, error)
	StudentLoad(ctx context.Context) (reports.StudentLoad, error)
	InstructorWorkload(ctx context.Context) ([]reports.InstructorWorkload, error)
}

// Client implements Service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// call performs a request and decodes the envelope's data into out
// (when out is non-nil).
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrTransport, err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decoding response (status %d): %v", ErrTransport, resp.StatusCode, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed (status %d)", resp.StatusCode)
		}
		return &APIError{Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decoding payload: %v", ErrTransport, err)
		}
	}
	return nil
}

// Students fetches the selectable students.
func (c *Client) Students(ctx context.Context) ([]catalog.Student, error) {
	var students []catalog.Student
	if err := c.call(ctx, http.MethodGet, "/api/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Catalog fetches the full department -> course -> section tree.
func (c *Client) Catalog(ctx context.Context) ([]catalog.Department, error) {
	var departments []catalog.Department
	if err := c.call(ctx, http.MethodGet, "/api/catalog", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// EnrolledCourses fetches a student's current enrollments.
func (c *Client) EnrolledCourses(ctx context.Context, studentID int) ([]catalog.EnrolledCourse, error) {
	var courses []catalog.EnrolledCourse
	path := fmt.Sprintf("/api/students/%d/enrolled_courses", studentID)
	if err := c.call(ctx, http.MethodGet, path, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Schedule fetches enrollments with meetings populated for the grid.
func (c *Client) Schedule(ctx context.Context, studentID int) ([]catalog.EnrolledCourse, error) {
	var courses []catalog.EnrolledCourse
	path := fmt.Sprintf("/api/students/%d/schedule", studentID)
	if err := c.call(ctx, http.MethodGet, path, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

type enrollRequest struct {
	SectionID int `json:"section_id"`
}

// Enroll enrolls the student in a section.
func (c *Client) Enroll(ctx context.Context, studentID, sectionID int) error {
	path := fmt.Sprintf("/api/students/%d/enrollments", studentID)
	return c.call(ctx, http.MethodPost, path, enrollRequest{SectionID: sectionID}, nil)
}

// CancelEnrollment drops the student's enrollment in a section.
func (c *Client) CancelEnrollment(ctx context.Context, studentID, sectionID int) error {
	path := fmt.Sprintf("/api/students/%d/enrollments/%d", studentID, sectionID)
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// SectionUtilization fetches the section utilization report rows.
func (c *Client) SectionUtilization(ctx context.Context) ([]reports.SectionUtilization, error) {
	var rows []reports.SectionUtilization
	if err := c.call(ctx, http.MethodGet, "/api/reports/section_utilization", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// StudentLoad fetches the student load distribution report.
func (c *Client) StudentLoad(ctx context.Context) (reports.StudentLoad, error) {
	var load reports.StudentLoad
	if err := c.call(ctx, http.MethodGet, "/api/reports/student_load_distribution", nil, &load); err != nil {
		return reports.StudentLoad{}, err
	}
	return load, nil
}

// InstructorWorkload fetches the instructor workload report rows.
func (c *Client) InstructorWorkload(ctx context.Context) ([]reports.InstructorWorkload, error) {
	var rows []reports.InstructorWorkload
	if err := c.call(ctx, http.MethodGet, "/api/reports/instructor_workload", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
