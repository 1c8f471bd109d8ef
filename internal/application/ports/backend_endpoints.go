package ports

// Rutas del backend de la agencia. Son también el "endpoint" de las claves de caché,
// por eso las plantillas conservan los nombres de parámetro del backend.
const (
	EndpointUsersPaged    = "/users/paginados"
	EndpointUserByID      = "/users/{id}"
	EndpointUsers         = "/users"
	EndpointStaffPaged    = "/staff/paginados"
	EndpointStaffByID     = "/staff/{id}"
	EndpointStaffByRole   = "/staff/by-role/{role}"
	EndpointStaff         = "/staff"
	EndpointStaffWithUser = "/staff/with-user"

	EndpointCustomersPaged = "/clientes/paginados"
	EndpointCustomers      = "/clientes"

	EndpointLiquidationsPaged  = "/liquidations/paginated"
	EndpointLiquidationByID    = "/liquidations/{liquidationId}"
	EndpointLiquidations       = "/liquidations"
	EndpointTourServices       = "/liquidations/{liquidationId}/tour-services"
	EndpointHotelServices      = "/liquidations/{liquidationId}/hotel-services"
	EndpointFlightServices     = "/liquidations/{liquidationId}/flight-services"
	EndpointAdditionalServices = "/liquidations/{liquidationId}/additional-services"
	EndpointPayments           = "/liquidations/{liquidationId}/payments"
	EndpointIncidencies        = "/liquidations/{liquidationId}/incidencies"
	EndpointLiquidationStatus  = "/liquidations/{liquidationId}/status"
)
