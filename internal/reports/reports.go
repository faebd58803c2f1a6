// Package reports holds the analytical report payloads returned by the
// gateway and the aggregate figures the console derives from them.
package reports

import (
	"sort"
	"strconv"
)

// SectionUtilization is one row of the section utilization report.
type SectionUtilization struct {
	SectionID      int    `json:"section_id"`
	SectionCode    string `json:"section_code"`
	CourseCode     string `json:"course_code"`
	CourseTitle    string `json:"course_title"`
	DepartmentName string `json:"department_name"`
	Capacity       int    `json:"capacity"`
	EnrolledCount  int    `json:"enrolled_count"`
}

// Utilization returns enrolled/capacity as a percentage. A section
// with zero capacity reads as 0.
func (s SectionUtilization) Utilization() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(s.EnrolledCount) / float64(s.Capacity) * 100
}

// UtilizationSummary aggregates the section rows the way the report
// header presents them.
type UtilizationSummary struct {
	Sections           int
	ActiveSharePct     int // share of sections with at least one student
	AvgUtilizationPct  int
	MaxCapacity        int
	DepartmentsPresent []string
}

// SummarizeUtilization computes the header figures for a section set.
func SummarizeUtilization(sections []SectionUtilization) UtilizationSummary {
	sum := UtilizationSummary{Sections: len(sections)}
	if len(sections) == 0 {
		return sum
	}

	active := 0
	var utilTotal float64
	seen := make(map[string]bool)
	for _, s := range sections {
		if s.EnrolledCount > 0 {
			active++
		}
		utilTotal += s.Utilization()
		if s.Capacity > sum.MaxCapacity {
			sum.MaxCapacity = s.Capacity
		}
		name := s.DepartmentName
		if name == "" {
			name = "Unknown"
		}
		if !seen[name] {
			seen[name] = true
			sum.DepartmentsPresent = append(sum.DepartmentsPresent, name)
		}
	}
	sort.Strings(sum.DepartmentsPresent)

	sum.ActiveSharePct = int(float64(active)/float64(len(sections))*100 + 0.5)
	sum.AvgUtilizationPct = int(utilTotal/float64(len(sections)) + 0.5)
	return sum
}

// FilterByDepartment keeps sections in the named department, or all
// sections when department is empty.
func FilterByDepartment(sections []SectionUtilization, department string) []SectionUtilization {
	if department == "" {
		return sections
	}
	var out []SectionUtilization
	for _, s := range sections {
		name := s.DepartmentName
		if name == "" {
			name = "Unknown"
		}
		if name == department {
			out = append(out, s)
		}
	}
	return out
}

// StudentLoad is the student load distribution report: how many
// students carry each credit total, plus cohort metrics.
type StudentLoad struct {
	CreditDistribution map[string]int `json:"credit_distribution"`
	Metrics            StudentMetrics `json:"student_metrics"`
}

// StudentMetrics are the cohort-level load figures.
type StudentMetrics struct {
	TotalStudents    int     `json:"total_students"`
	AverageCredits   float64 `json:"average_credits"`
	UnderLoadedCount int     `json:"under_loaded_count"` // below 12 credits
}

// SortedCredits returns the distribution's credit keys in ascending
// numeric order. Non-numeric keys sort last, lexically.
func (l StudentLoad) SortedCredits() []string {
	keys := make([]string, 0, len(l.CreditDistribution))
	for k := range l.CreditDistribution {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if errA != errB {
			return errA == nil
		}
		return keys[i] < keys[j]
	})
	return keys
}

// MaxBucket returns the largest student count in the distribution.
func (l StudentLoad) MaxBucket() int {
	maxCount := 0
	for _, n := range l.CreditDistribution {
		if n > maxCount {
			maxCount = n
		}
	}
	return maxCount
}

// InstructorWorkload is one row of the instructor workload report.
type InstructorWorkload struct {
	InstructorID   int    `json:"instructor_id"`
	InstructorName string `json:"instructor_name"`
	TotalSections  int    `json:"total_sections"`
	TotalStudents  int    `json:"total_students"`
}

// Workload is the compound figure instructors are ranked by.
func (w InstructorWorkload) Workload() int {
	return w.TotalSections + w.TotalStudents
}

// SortByWorkload orders instructors by descending compound workload.
func SortByWorkload(rows []InstructorWorkload) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Workload() > rows[j].Workload()
	})
}

// WorkloadMaxima are the scale ceilings used when drawing bars.
type WorkloadMaxima struct {
	Workload int
	Sections int
	Students int
}

// Maxima computes the bar scale ceilings for a workload row set.
func Maxima(rows []InstructorWorkload) WorkloadMaxima {
	var m WorkloadMaxima
	for _, r := range rows {
		if r.Workload() > m.Workload {
			m.Workload = r.Workload()
		}
		if r.TotalSections > m.Sections {
			m.Sections = r.TotalSections
		}
		if r.TotalStudents > m.Students {
			m.Students = r.TotalStudents
		}
	}
	return m
}
