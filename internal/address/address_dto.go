package address

// CreateAddressRequest carries the structured fields; storage keeps the
// comma-joined flattened form.
type CreateAddressRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// Flatten joins the fields into the stored string form.
func (r CreateAddressRequest) Flatten() string {
	return r.Name + ", " + r.Phone + ", " + r.Street + ", " + r.City + ", " + r.State + ", " + r.Pincode
}

type AddressResponse struct {
	Index   int    `json:"index"`
	Address string `json:"address"`
}

type ListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}
