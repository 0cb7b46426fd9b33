package dto

// TrashBinDTO respuesta de GET /api/trash: registros eliminados dentro de la
// ventana de gracia, por tipo. Lo eliminado antes de la ventana no aparece
// (sigue en la DB pero ya no es recuperable desde la API).
type TrashBinDTO struct {
	Orders   []OrderResponse   `json:"orders"`
	Products []ProductResponse `json:"products"`
	Sales    []SaleResponse    `json:"sales"`
	Payments []PaymentResponse `json:"payments"`
}

// DataManagementDTO respuesta de GET /api/data: listados activos del usuario
// para la pantalla de gestión (lo más reciente primero).
type DataManagementDTO struct {
	Orders   []OrderResponse           `json:"orders"`
	Products []ProductResponse         `json:"products"`
	Sales    []SaleWithProductResponse `json:"sales"`
}
