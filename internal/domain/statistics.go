package domain

import "time"

// Statistics is a singleton row of headline numbers for the landing page.
type Statistics struct {
	ID              string
	PatientsTreated int
	TestReports     int
	HoursSupport    int
	RecoveryRate    int
	UpdatedAt       time.Time
}

// DefaultStatistics seeds the singleton on first read.
func DefaultStatistics() Statistics {
	return Statistics{
		PatientsTreated: 2500,
		TestReports:     1200,
		HoursSupport:    24,
		RecoveryRate:    98,
	}
}
