package Ledger

import (
	"fmt"
	"math"
	"time"

	"Puantaj/Models"
)

// TipShare is one staff member's cut of the weekly pool.
type TipShare struct {
	UserID uint    `json:"user_id"`
	Name   string  `json:"name"`
	Hours  float64 `json:"hours"`
	Share  float64 `json:"share"`
}

// TipDistribution is the advisory weekly split. It is display-only and is
// never written back as entries.
type TipDistribution struct {
	WeekStart   string     `json:"week_start"`
	WeekEnd     string     `json:"week_end"`
	TotalHours  float64    `json:"total_hours"`
	HourlyRate  float64    `json:"hourly_rate"`
	Shares      []TipShare `json:"shares"`
	Distributed float64    `json:"distributed"`
	Leftover    float64    `json:"leftover"`
}

// DistributeTips splits a tip pool over the Monday-Sunday week ending on the
// given Sunday, proportional to each member's summed hours in that window.
// Shares are floored so the distributed total never exceeds the pool; the
// remainder is reported as leftover cash to hand out manually.
func DistributeTips(users []Models.User, entries []Models.Entry, sunday string, pool float64) (TipDistribution, error) {
	end, err := time.Parse(dateLayout, sunday)
	if err != nil {
		return TipDistribution{}, fmt.Errorf("invalid week end date %q", sunday)
	}
	start := end.AddDate(0, 0, -6)

	dist := TipDistribution{
		WeekStart: start.Format(dateLayout),
		WeekEnd:   end.Format(dateLayout),
	}

	for _, user := range users {
		var totalHours float64
		for _, entry := range entries {
			if entry.UserID != user.ID || entry.Hours == nil || *entry.Hours == 0 {
				continue
			}
			if entry.Date < dist.WeekStart || entry.Date > dist.WeekEnd {
				continue
			}
			totalHours += *entry.Hours
		}
		if totalHours > 0 {
			dist.Shares = append(dist.Shares, TipShare{
				UserID: user.ID,
				Name:   user.Name,
				Hours:  totalHours,
			})
			dist.TotalHours += totalHours
		}
	}

	if pool <= 0 || dist.TotalHours == 0 {
		return dist, nil
	}

	dist.HourlyRate = pool / dist.TotalHours
	for i := range dist.Shares {
		dist.Shares[i].Share = math.Floor(dist.Shares[i].Hours * dist.HourlyRate)
		dist.Distributed += dist.Shares[i].Share
	}
	dist.Leftover = pool - dist.Distributed

	return dist, nil
}
