package domain

type ProductGroup string

const (
	ProductGroupClothes     ProductGroup = "CLOTHES"
	ProductGroupShoes       ProductGroup = "SHOES"
	ProductGroupTobacco     ProductGroup = "TOBACCO"
	ProductGroupPerfumes    ProductGroup = "PERFUMES"
	ProductGroupTires       ProductGroup = "TIRES"
	ProductGroupElectronics ProductGroup = "ELECTRONICS"
	ProductGroupDairy       ProductGroup = "DAIRY"
)

func (g ProductGroup) IsValid() bool {
	switch g {
	case ProductGroupClothes, ProductGroupShoes, ProductGroupTobacco,
		ProductGroupPerfumes, ProductGroupTires, ProductGroupElectronics, ProductGroupDairy:
		return true
	default:
		return false
	}
}

type DocumentFormat string

const (
	DocumentFormatManual DocumentFormat = "MANUAL"
	DocumentFormatCsv    DocumentFormat = "CSV"
	DocumentFormatXml    DocumentFormat = "XML"
)

func (f DocumentFormat) IsValid() bool {
	switch f {
	case DocumentFormatManual, DocumentFormatCsv, DocumentFormatXml:
		return true
	default:
		return false
	}
}

type DocumentType string

const (
	DocumentTypeLpIntroduceGoods DocumentType = "LP_INTRODUCE_GOODS"
)

func (t DocumentType) IsValid() bool {
	return t == DocumentTypeLpIntroduceGoods
}

type Document struct {
	ProductDocument string
	ProductGroup    ProductGroup
	DocumentFormat  DocumentFormat
	Type            DocumentType
}

type DocumentRequest struct {
	ProductDocument string `json:"productDocument"`
	ProductGroup    string `json:"productGroup"`
	DocumentFormat  string `json:"documentFormat"`
	Type            string `json:"type"`
	Signature       string `json:"signature"`
}

type DocumentResponse struct {
	Value            string `json:"value,omitempty"`
	ErrorCode        string `json:"errorCode,omitempty"`
	ErrorMessage     string `json:"errorMessage,omitempty"`
	ErrorDescription string `json:"errorDescription,omitempty"`
}

// HasError is the sole success/failure discriminator for a parsed response.
// A malformed upstream response may carry both value and error slots, error wins.
func (r DocumentResponse) HasError() bool {
	return r.ErrorCode != "" || r.ErrorMessage != ""
}
