package dto

// Customers, suppliers, categories, and companies share the simple
// create/list shape of the original back office.

type CustomerFilter struct {
	PageQuery
	Search string `form:"search"`
	Type   string `form:"type" validate:"omitempty,oneof=individual company"`
}

type CreateCustomerRequest struct {
	Name         string  `json:"name"          validate:"required,min=2"`
	CPFCNPJ      *string `json:"cpf_cnpj"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Address      *string `json:"address"`
	CustomerType string  `json:"customer_type" validate:"omitempty,oneof=individual company"`
}

type CustomerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CPFCNPJ      *string `json:"cpf_cnpj"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	CustomerType string  `json:"customer_type"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

type SupplierFilter struct {
	PageQuery
	Search   string `form:"search"`
	Category string `form:"category" validate:"omitempty,oneof=fabricante distribuidor servico outro"`
}

type CreateSupplierRequest struct {
	Name          string  `json:"name"           validate:"required,min=2"`
	CNPJ          *string `json:"cnpj"`
	Category      string  `json:"category"       validate:"required,oneof=fabricante distribuidor servico outro"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms"`
	DeliveryTime  *int    `json:"delivery_time"  validate:"omitempty,min=0"`
	Rating        *int    `json:"rating"         validate:"omitempty,min=1,max=5"`
}

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CNPJ          *string `json:"cnpj"`
	Category      string  `json:"category"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms"`
	DeliveryTime  *int    `json:"delivery_time"`
	Rating        *int    `json:"rating"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"         validate:"required,min=2"`
	Description *string `json:"description"`
	ProductType string  `json:"product_type" validate:"required,oneof=totem tablet insumo peca_acrilico wobbler totem_eliptico adesivo placa material_corte"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ProductType string  `json:"product_type"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type CreateCompanyRequest struct {
	Name    string  `json:"name"    validate:"required,min=2"`
	CNPJ    *string `json:"cnpj"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"   validate:"omitempty,email"`
}

type CompanyResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CNPJ      *string `json:"cnpj"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

type CreateLocationRequest struct {
	CompanyID   string  `json:"company_id"  validate:"required,uuid"`
	Name        string  `json:"name"        validate:"required,min=2"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

type LocationResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	IsActive    bool    `json:"is_active"`
}
