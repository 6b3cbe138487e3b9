package service

import (
	"sort"

	"github.com/noah-isme/course-report-api/internal/models"
)

// FilterCourseStats keeps the rows matching both the status and the provider selection,
// preserving order. The result is never nil so an empty match stays distinguishable from
// a report that was not computed.
func FilterCourseStats(stats []models.CourseStats, selection models.FilterSelection) []models.CourseStats {
	filtered := make([]models.CourseStats, 0, len(stats))
	for _, row := range stats {
		if matchesStatus(row, selection.Status) && matchesProvider(row, selection.Provider) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func matchesStatus(row models.CourseStats, status models.StatusFilter) bool {
	switch status {
	case models.StatusFilterActive:
		return row.IsActive
	case models.StatusFilterInactive:
		return !row.IsActive
	default:
		return true
	}
}

func matchesProvider(row models.CourseStats, provider string) bool {
	if provider == "" || provider == models.ProviderFilterAll {
		return true
	}
	return row.Provider == provider
}

// ProviderOptions lists the distinct course providers in ascending order.
func ProviderOptions(courses []models.Course) []string {
	seen := make(map[string]struct{}, len(courses))
	providers := make([]string, 0, len(courses))
	for _, course := range courses {
		if _, ok := seen[course.Provider]; ok {
			continue
		}
		seen[course.Provider] = struct{}{}
		providers = append(providers, course.Provider)
	}
	sort.Strings(providers)
	return providers
}
