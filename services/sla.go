package services

import (
	"time"
)

// Hours until due per issue category and priority.
var slaHours = map[string]map[string]int{
	"potholes":               {"low": 168, "medium": 72, "high": 24, "urgent": 4},
	"Garbage":                {"low": 48, "medium": 24, "high": 8, "urgent": 2},
	"WaterLogging":           {"low": 72, "medium": 48, "high": 12, "urgent": 4},
	"DamagedElectricalPoles": {"low": 120, "medium": 72, "high": 24, "urgent": 8},
	"FallenTrees":            {"low": 168, "medium": 96, "high": 48, "urgent": 12},
}

// CalculateDeadline derives an assignment deadline from the issue's category
// and priority. Unknown categories or priorities fall back to a 72 hour
// window.
func CalculateDeadline(category, priority string) time.Time {
	hours := 72
	if byPriority, ok := slaHours[category]; ok {
		if h, ok := byPriority[priority]; ok {
			hours = h
		}
	}
	return time.Now().Add(time.Duration(hours) * time.Hour)
}
