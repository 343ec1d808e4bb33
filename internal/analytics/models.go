package analytics

// DailyRevenue is one day's committed revenue
type DailyRevenue struct {
	Date     string `json:"date"`
	Revenue  int    `json:"revenue"`
	Bookings int    `json:"bookings"`
}

// HourlyOccupancy counts bookings whose slot starts in a given hour of day
type HourlyOccupancy struct {
	Hour     int `json:"hour"`
	Bookings int `json:"bookings"`
}

// CourtUsage aggregates bookings and revenue per court
type CourtUsage struct {
	CourtID    string `json:"court_id"`
	CourtLabel string `json:"court_label"`
	Bookings   int    `json:"bookings"`
	Revenue    int    `json:"revenue"`
}

// Summary is the admin dashboard payload
type Summary struct {
	TotalBookings   int               `json:"total_bookings"`
	TotalRevenue    int               `json:"total_revenue"`
	TotalDiscount   int               `json:"total_discount"`
	WaitlistSize    int               `json:"waitlist_size"`
	RevenueByDay    []DailyRevenue    `json:"revenue_by_day"`
	OccupancyByHour []HourlyOccupancy `json:"occupancy_by_hour"`
	UsageByCourt    []CourtUsage      `json:"usage_by_court"`
}
