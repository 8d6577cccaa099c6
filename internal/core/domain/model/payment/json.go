package payment

import (
	"encoding/json"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
)

// infoJSON is the wire shape of Info: the method name discriminates which of
// the variant fields is populated.
type infoJSON struct {
	Method           string             `json:"method"`
	PurchaseOrder    *PurchaseOrder     `json:"purchaseOrder,omitempty"`
	BillOfLading     *BillOfLading      `json:"billOfLading,omitempty"`
	ThirdParty       *ThirdParty        `json:"thirdParty,omitempty"`
	NetTerms         *NetTerms          `json:"netTerms,omitempty"`
	CorporateAccount *CorporateAccount  `json:"corporateAccount,omitempty"`
	BillingContact   kernel.Contact     `json:"billingContact"`
	CompanyName      string             `json:"companyName"`
	BillingAddress   BillingAddress     `json:"billingAddress"`
	Invoice          InvoicePreferences `json:"invoicePreferences"`
}

// MarshalJSON encodes the payment section with a method discriminator so the
// closed Details union survives serialization.
func (i Info) MarshalJSON() ([]byte, error) {
	out := infoJSON{
		Method:         i.Method().String(),
		BillingContact: i.BillingContact,
		CompanyName:    i.CompanyName,
		BillingAddress: i.BillingAddress,
		Invoice:        i.Invoice,
	}

	switch d := i.Details.(type) {
	case PurchaseOrder:
		out.PurchaseOrder = &d
	case BillOfLading:
		out.BillOfLading = &d
	case ThirdParty:
		out.ThirdParty = &d
	case NetTerms:
		out.NetTerms = &d
	case CorporateAccount:
		out.CorporateAccount = &d
	case nil:
	default:
		return nil, fmt.Errorf("unsupported payment details type %T", i.Details)
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the payment section, resolving the Details variant
// from the method discriminator.
func (i *Info) UnmarshalJSON(data []byte) error {
	var in infoJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	info := Info{
		BillingContact: in.BillingContact,
		CompanyName:    in.CompanyName,
		BillingAddress: in.BillingAddress,
		Invoice:        in.Invoice,
	}

	if in.Method != "" && in.Method != MethodUnknown.String() {
		method, err := ParseMethod(in.Method)
		if err != nil {
			return err
		}

		switch method {
		case MethodPurchaseOrder:
			if in.PurchaseOrder == nil {
				return fmt.Errorf("payment method %q requires purchaseOrder details", in.Method)
			}
			info.Details = *in.PurchaseOrder
		case MethodBillOfLading:
			if in.BillOfLading == nil {
				return fmt.Errorf("payment method %q requires billOfLading details", in.Method)
			}
			info.Details = *in.BillOfLading
		case MethodThirdParty:
			if in.ThirdParty == nil {
				return fmt.Errorf("payment method %q requires thirdParty details", in.Method)
			}
			info.Details = *in.ThirdParty
		case MethodNetTerms:
			if in.NetTerms == nil {
				return fmt.Errorf("payment method %q requires netTerms details", in.Method)
			}
			info.Details = *in.NetTerms
		case MethodCorporate:
			if in.CorporateAccount == nil {
				return fmt.Errorf("payment method %q requires corporateAccount details", in.Method)
			}
			info.Details = *in.CorporateAccount
		}
	}

	*i = info
	return nil
}
