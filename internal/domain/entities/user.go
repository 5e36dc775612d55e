package entities

// User is the identity resolved by the auth collaborator from a bearer
// credential. CPF is the Brazilian tax id used for payment payer data.

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CPF     string `json:"cpf,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
