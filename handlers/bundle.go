package handlers

// HandlerBundle aggregates the handlers wired at startup so route
// registration only has to pass one value around.
type HandlerBundle struct {
	Booking  *BookingHandler
	Calendar *CalendarHandler
	Catalog  *CatalogHandler
}
