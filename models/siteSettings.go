package models

import "time"

type SiteSettings struct {
	ID               int       `json:"id" goqu:"skipinsert"`
	Site_Name        string    `json:"siteName"`
	Site_Description string    `json:"siteDescription"`
	Contact_Email    string    `json:"contactEmail"`
	Pastor_Name      string    `json:"pastorName"`
	Church_Address   string    `json:"churchAddress"`
	Service_Times    string    `json:"serviceTimes"`
	Created_At       time.Time `json:"createdAt" goqu:"skipinsert"`
	Updated_At       time.Time `json:"updatedAt" goqu:"skipinsert"`
}

// DefaultSettings is returned when no settings row exists yet.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		Site_Name:        "Our Church",
		Site_Description: "A loving community of believers",
		Contact_Email:    "info@ourchurch.org",
		Pastor_Name:      "Pastor John Doe",
		Church_Address:   "123 Church Street, City, State 12345",
		Service_Times:    "Sunday: 9:00 AM & 11:00 AM\nWednesday: 7:00 PM",
	}
}

type SiteSettingsUpdate struct {
	SiteName        *string `json:"siteName"`
	SiteDescription *string `json:"siteDescription"`
	ContactEmail    *string `json:"contactEmail"`
	PastorName      *string `json:"pastorName"`
	ChurchAddress   *string `json:"churchAddress"`
	ServiceTimes    *string `json:"serviceTimes"`
}
