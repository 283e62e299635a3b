package dashboard

import (
	"time"

	"github.com/google/uuid"

	"approvaldash/internal/approval/models"
)

// Statistics counts the caller's records. Pending covers all open work; the
// other counts are limited to the current calendar month.
type Statistics struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// ActivityKind classifies a feed entry.
type ActivityKind string

const (
	ActivityCreated   ActivityKind = "created"
	ActivityApproved  ActivityKind = "approved"
	ActivityRejected  ActivityKind = "rejected"
	ActivityWithdrawn ActivityKind = "withdrawn"
)

// Activity is one entry of the recent activity feed.
type Activity struct {
	ApprovalID   uuid.UUID     `json:"approvalId"`
	ActivityType ActivityKind  `json:"activityType"`
	Title        string        `json:"title"`
	TypeName     string        `json:"typeName"`
	TypeIcon     string        `json:"typeIcon,omitempty"`
	TypeColor    string        `json:"typeColor,omitempty"`
	ActivityTime time.Time     `json:"activityTime"`
	Status       models.Status `json:"status"`
	RelativeTime string        `json:"relativeTime"`
}

// TrendPoint holds one day of submission volume.
type TrendPoint struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

// TypeShare is one slice of the type distribution chart.
type TypeShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// EfficiencyMetrics summarises throughput. Rates are percentages and
// AvgProcessTime is in hours, all rounded to one decimal.
type EfficiencyMetrics struct {
	AvgProcessTime float64 `json:"avgProcessTime"`
	MonthlyCount   int     `json:"monthlyCount"`
	ApprovalRate   float64 `json:"approvalRate"`
	MonthlyChange  float64 `json:"monthlyChange"`
}

// TodoPriority is the display urgency of a to-do item.
type TodoPriority int

const (
	TodoPriorityHigh   TodoPriority = 1
	TodoPriorityMedium TodoPriority = 2
	// TodoPriorityLow is part of the display scale but no record priority maps to it.
	TodoPriorityLow TodoPriority = 3
)

// TodoItem is a record awaiting the caller's decision.
type TodoItem struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	ApplicantName string       `json:"applicantName"`
	Priority      TodoPriority `json:"priority"`
	WaitingTime   string       `json:"waitingTime"`
	TypeName      string       `json:"typeName"`
}

// TypeEfficiency is the mean processing time of one approval type, in hours
// rounded to two decimals.
type TypeEfficiency struct {
	TypeName       string  `json:"typeName"`
	AvgProcessTime float64 `json:"avgProcessTime"`
}

// DailySubmission is one heat-map cell. Level ranges 0 to 4.
type DailySubmission struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Overview bundles every dashboard view for one caller.
type Overview struct {
	Statistics       *Statistics        `json:"statistics"`
	RecentActivities []Activity         `json:"recentActivities"`
	Trend            []TrendPoint       `json:"trend"`
	TypeDistribution []TypeShare        `json:"typeDistribution"`
	Efficiency       *EfficiencyMetrics `json:"efficiency"`
	Todos            []TodoItem         `json:"todos"`
	TypeEfficiency   []TypeEfficiency   `json:"typeEfficiency"`
	Heatmap          []DailySubmission  `json:"heatmap"`
}
