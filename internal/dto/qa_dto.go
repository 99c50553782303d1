package dto

import "github.com/google/uuid"

type CreateQARequest struct {
	HostName  string `json:"host_name" validate:"required" errmsg:"Name of Host is Missing"`
	QaName    string `json:"qaName"`
	StartTime string `json:"start_time" validate:"required" errmsg:"Start Time is Missing"`
	EndTime   string `json:"end_time" validate:"required" errmsg:"End Time is Missing"`
}

type CreateQAResponse struct {
	User    UserRef         `json:"user"`
	Details CreateQADetails `json:"details"`
}

// Dates are epoch milliseconds on the wire, matching what clients already
// parse.
type CreateQADetails struct {
	Id        uuid.UUID `json:"id"`
	QaName    string    `json:"qaName"`
	StartDate int64     `json:"start_date"`
	EndDate   int64     `json:"end_date"`
}

type ShowQAResponse struct {
	User    UserRef       `json:"user"`
	Details ShowQADetails `json:"details"`
}

type ShowQADetails struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate int64     `json:"startDate"`
	EndDate   int64     `json:"endDate"`
}
