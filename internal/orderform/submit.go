package orderform

// SubmitOrder is the serializable snapshot posted to the external sales order
// service. Field names follow that service's schema, not the form's.
type SubmitOrder struct {
	SalesOrder              string             `json:"SalesOrder,omitempty"`
	SoldToParty             string             `json:"SoldToParty"`
	ShipToParty             string             `json:"ShipToParty"`
	PurchaseOrderByCustomer string             `json:"PurchaseOrderByCustomer"`
	RequestedDeliveryDate   string             `json:"RequestedDeliveryDate"`
	IncotermsClassification string             `json:"IncotermsClassification"`
	TransactionCurrency     string             `json:"TransactionCurrency"`
	TotalNetAmount          string             `json:"TotalNetAmount"`
	TaxAmount               string             `json:"TaxAmount"`
	TotalAmount             string             `json:"TotalAmount"`
	Items                   []SubmitItem       `json:"Items"`
	Attachments             []SubmitAttachment `json:"Attachments"`
}

// SubmitItem is one order line in the external schema.
type SubmitItem struct {
	SalesOrderItem        int    `json:"SalesOrderItem"`
	Material              string `json:"Material"`
	RequestedQuantity     string `json:"RequestedQuantity"`
	RequestedQuantityUnit string `json:"RequestedQuantityUnit"`
	NetPriceAmount        string `json:"NetPriceAmount"`
	NetAmount             string `json:"NetAmount"`
	ProductionPlant       string `json:"ProductionPlant"`
	StorageLocation       string `json:"StorageLocation"`
}

// SubmitAttachment carries one attached file as a base64 blob.
type SubmitAttachment struct {
	FileName   string `json:"FileName"`
	FileType   string `json:"FileType"`
	Content    string `json:"Content"` // base64
	UploadDate string `json:"UploadDate"`
}

// BuildSubmitPayload maps a form snapshot to the external schema. Totals and
// line totals are re-derived so the payload can never drift from the items.
func BuildSubmitPayload(f Form) SubmitOrder {
	f = Recalculate(f)

	items := make([]SubmitItem, len(f.LineItems))
	for i, item := range f.LineItems {
		items[i] = SubmitItem{
			SalesOrderItem:        item.ItemNumber,
			Material:              item.MaterialID,
			RequestedQuantity:     item.Quantity,
			RequestedQuantityUnit: item.UnitOfMeasure,
			NetPriceAmount:        item.UnitPrice,
			NetAmount:             item.TotalPrice,
			ProductionPlant:       item.Plant,
			StorageLocation:       item.StorageLocation,
		}
	}

	attachments := make([]SubmitAttachment, len(f.Attachments))
	for i, a := range f.Attachments {
		attachments[i] = SubmitAttachment{
			FileName:   a.FileName,
			FileType:   a.FileType,
			Content:    a.Content,
			UploadDate: a.UploadDate,
		}
	}

	return SubmitOrder{
		SoldToParty:             f.SoldToParty,
		ShipToParty:             f.ShipToParty,
		PurchaseOrderByCustomer: f.PONumber,
		RequestedDeliveryDate:   f.RequestedDeliveryDate,
		IncotermsClassification: f.Incoterms,
		TransactionCurrency:     f.Currency,
		TotalNetAmount:          f.Totals.NetAmount,
		TaxAmount:               f.Totals.TaxAmount,
		TotalAmount:             f.Totals.TotalAmount,
		Items:                   items,
		Attachments:             attachments,
	}
}
