package models

// WidgetType identifies a dashboard widget. Each type appears at most once
// in a layout; order in the layout is the visual order.
type WidgetType string

const (
	WidgetMetrics     WidgetType = "METRICS"
	WidgetVehicleList WidgetType = "VEHICLE_LIST"
	WidgetDriverList  WidgetType = "DRIVER_LIST"
	WidgetMaintenance WidgetType = "MAINTENANCE"
	WidgetVehicleMap  WidgetType = "VEHICLE_MAP"
	WidgetMail        WidgetType = "MAIL"
	WidgetCalendar    WidgetType = "CALENDAR"
)

// IsValid checks if a widget type is one of the known values.
func (w WidgetType) IsValid() bool {
	switch w {
	case WidgetMetrics, WidgetVehicleList, WidgetDriverList, WidgetMaintenance,
		WidgetVehicleMap, WidgetMail, WidgetCalendar:
		return true
	default:
		return false
	}
}

// WidgetMeta carries the presentation hints the client needs to place a
// widget in the grid.
type WidgetMeta struct {
	Title    string `json:"title"`
	GridSpan string `json:"gridSpan"`
}

// WidgetConfig maps each widget type to its presentation metadata.
var WidgetConfig = map[WidgetType]WidgetMeta{
	WidgetMetrics:     {Title: "Fleet Overview", GridSpan: "col-span-12"},
	WidgetMaintenance: {Title: "Maintenance Due", GridSpan: "col-span-12 lg:col-span-4"},
	WidgetVehicleMap:  {Title: "Live Vehicle Map", GridSpan: "col-span-12 lg:col-span-8"},
	WidgetVehicleList: {Title: "Vehicle Directory", GridSpan: "col-span-12 md:col-span-6"},
	WidgetDriverList:  {Title: "Driver Directory", GridSpan: "col-span-12 md:col-span-6"},
	WidgetMail:        {Title: "Mail Inbox", GridSpan: "col-span-12 lg:col-span-4"},
	WidgetCalendar:    {Title: "Calendar", GridSpan: "col-span-12 lg:col-span-4"},
}

// DefaultWidgets returns the widget order a fresh dashboard starts with.
func DefaultWidgets() []WidgetType {
	return []WidgetType{
		WidgetMetrics,
		WidgetMaintenance,
		WidgetCalendar,
		WidgetMail,
		WidgetVehicleMap,
		WidgetVehicleList,
		WidgetDriverList,
	}
}
