package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestStudentsDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/students" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"success": true, "data": [
			{"student_id": 1, "student_number": "S001", "first_name": "Ana", "last_name": "Ruiz", "email": "ana@uni.edu"}
		]}`)
	})

	students, err := c.Students(context.Background())
	if err != nil {
		t.Fatalf("Students error: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("len(students) = %d, want 1", len(students))
	}
	s := students[0]
	if s.StudentID != 1 || s.StudentNumber != "S001" || s.FullName() != "Ana Ruiz" {
		t.Errorf("student = %+v", s)
	}
}

func TestApplicationErrorPassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success": false, "error": "Section is full"}`)
	})

	err := c.Enroll(context.Background(), 1, 42)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if got := UserMessage(err); got != "Section is full" {
		t.Errorf("UserMessage = %q, want the service's reason", got)
	}
}

func TestFailureWithoutReasonGetsStatusMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false}`)
	})

	_, err := c.Students(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "request failed (status 500)" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestTransportErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections
	c := New(srv.URL, time.Second)

	_, err := c.Students(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
	if got := UserMessage(err); got != ConnectivityMessage {
		t.Errorf("UserMessage = %q, want connectivity message", got)
	}
}

func TestMalformedBodyIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>gateway timeout</html>`)
	})

	_, err := c.Catalog(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
}

func TestEnrollSendsSectionBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/students/3/enrollments" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body struct {
			SectionID int `json:"section_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body.SectionID != 42 {
			t.Errorf("section_id = %d, want 42", body.SectionID)
		}
		fmt.Fprint(w, `{"success": true}`)
	})

	if err := c.Enroll(context.Background(), 3, 42); err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
}

func TestCancelEnrollmentRoute(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/students/3/enrollments/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"success": true}`)
	})

	if err := c.CancelEnrollment(context.Background(), 3, 42); err != nil {
		t.Fatalf("CancelEnrollment error: %v", err)
	}
}

func TestStudentLoadDecodesDistribution(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reports/student_load_distribution" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"success": true, "data": {
			"credit_distribution": {"12": 4, "15": 2},
			"student_metrics": {"total_students": 6, "average_credits": 13.0, "under_loaded_count": 0}
		}}`)
	})

	load, err := c.StudentLoad(context.Background())
	if err != nil {
		t.Fatalf("StudentLoad error: %v", err)
	}
	if load.CreditDistribution["12"] != 4 || load.Metrics.TotalStudents != 6 {
		t.Errorf("load = %+v", load)
	}
}

func TestScheduleMeetings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/students/1/schedule" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"success": true, "data": [{
			"section_id": 9, "section_code": "A", "course_code": "CS101",
			"course_title": "Intro", "credits": 3,
			"meetings": [{"day_of_week": "Monday", "start_time": "09:00:00", "end_time": "10:15:00"}]
		}]}`)
	})

	courses, err := c.Schedule(context.Background(), 1)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if len(courses) != 1 || len(courses[0].Meetings) != 1 {
		t.Fatalf("courses = %+v", courses)
	}
	if courses[0].Meetings[0].StartTime != "09:00:00" {
		t.Errorf("start_time = %q", courses[0].Meetings[0].StartTime)
	}
}
