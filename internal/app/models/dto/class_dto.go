package dto

// ListClassesQuery captures the supported class-listing filters. A free-text
// search takes precedence over a class-code match; the day filter narrows
// either result set and accepts the sentinel "all" for no restriction.
type ListClassesQuery struct {
	Day       string `form:"day"`
	Search    string `form:"search"`
	ClassCode string `form:"classCode"`
}

// CreateClassRequest is the insertable shape of a class session. The
// identifier is server-assigned and must not appear in the input.
type CreateClassRequest struct {
	ClassCode string `json:"classCode" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Teacher   string `json:"teacher" binding:"required"`
	Room      string `json:"room" binding:"required"`
	Day       string `json:"day" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
