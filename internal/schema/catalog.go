package schema

import "github.com/closingdesk/contract-extract/constants"

// rpaCA declares the field catalogue for the California residential purchase
// agreement layout. Anchors are the printed paragraph numbers of the form;
// they are stable across revisions of the family. Checkbox options are the
// printed option letters.
func rpaCA() *Catalog {
	return &Catalog{
		Family: constants.FamilyRPACA,
		Fields: []FieldSpec{
			// parties (page 0)
			{Name: "buyer_names", Group: "parties", Type: TypeArray, Required: true, Label: "THIS IS AN OFFER FROM"},
			{Name: "seller_names", Group: "parties", Type: TypeArray, Required: true, Label: "Seller"},

			// property (page 0)
			{Name: "property_address", Group: "property", Type: TypeString, Required: true, Label: "situated in"},
			{Name: "property_city", Group: "property", Type: TypeString, Required: true, Label: "city of"},
			{Name: "property_county", Group: "property", Type: TypeString, Required: false, Label: "county of"},
			{Name: "assessor_parcel_no", Group: "property", Type: TypeString, Required: false, Label: "Assessor's Parcel No"},

			// price (page 0)
			{Name: "purchase_price", Group: "price", Type: TypeNumber, Required: true, Label: "purchase price offered is"},
			{Name: "initial_deposit", Group: "price", Type: TypeNumber, Required: true, Anchor: "3.A", Label: "Initial deposit"},
			{Name: "increased_deposit", Group: "price", Type: TypeNumber, Required: false, Anchor: "3.B", Label: "Increased deposit"},
			{Name: "loan_amount", Group: "price", Type: TypeNumber, Required: false, Anchor: "3.D", Label: "Loan amount"},
			{Name: "down_payment", Group: "price", Type: TypeNumber, Required: false, Anchor: "3.F", Label: "Down payment"},

			// financing (page 1)
			{Name: "all_cash", Group: "financing", Type: TypeBoolean, Required: false, Anchor: "3.C",
				Rules: []ContextRule{{Keyword: "verification of funds", ImpliedValue: "true"}}},
			{Name: "financing_type", Group: "financing", Type: TypeEnum, Required: true, Anchor: "3.D(1)",
				Options: []string{"A", "B", "C", "D"}, // A conventional, B FHA, C VA, D other
				Rules: []ContextRule{
					{Keyword: "FHA/VA amendatory clause", ImpliedValue: "B"},
					{Keyword: "VA funding fee", ImpliedValue: "C"},
				}},
			{Name: "loan_contingency", Group: "financing", Type: TypeBoolean, Required: true, Anchor: "3.J",
				Rules: []ContextRule{{Keyword: "loan contingency removal", ImpliedValue: "true"}}},
			{Name: "loan_contingency_days", Group: "financing", Type: TypeNumber, Required: false, Anchor: "3.J(1)", Label: "Days After Acceptance"},
			{Name: "appraisal_contingency", Group: "financing", Type: TypeBoolean, Required: true, Anchor: "3.I",
				Rules: []ContextRule{{Keyword: "appraised value", ImpliedValue: "true"}}},
			{Name: "occupancy_type", Group: "financing", Type: TypeEnum, Required: false, Anchor: "5",
				Options: []string{"A", "B", "C"}}, // A primary, B secondary, C investment

			// contingencies (page 2)
			{Name: "inspection_contingency_days", Group: "contingencies", Type: TypeNumber, Required: true, Anchor: "14.B(1)", Label: "Days After Acceptance"},
			{Name: "investigation_contingency", Group: "contingencies", Type: TypeBoolean, Required: false, Anchor: "14.B"},
			{Name: "sale_of_buyer_property", Group: "contingencies", Type: TypeBoolean, Required: true, Anchor: "4.B",
				Rules: []ContextRule{{Keyword: "COP", ImpliedValue: "true"}}},
			{Name: "natural_hazard_report", Group: "contingencies", Type: TypeEnum, Required: false, Anchor: "7.A(4)",
				Options: []string{"A", "B"}}, // A buyer pays, B seller pays
			{Name: "wood_pest_report", Group: "contingencies", Type: TypeEnum, Required: false, Anchor: "7.A(5)",
				Options: []string{"A", "B"}},

			// dates (page 0 and 7)
			{Name: "offer_date", Group: "dates", Type: TypeDate, Required: true, Label: "Date Prepared"},
			{Name: "close_of_escrow_days", Group: "dates", Type: TypeNumber, Required: false, Anchor: "1.D", Label: "Days After Acceptance"},
			{Name: "close_of_escrow_date", Group: "dates", Type: TypeDate, Required: false, Anchor: "1.D", Label: "on the date of"},
			{Name: "expiration_date", Group: "dates", Type: TypeDate, Required: false, Anchor: "31", Label: "This offer shall expire"},
			{Name: "possession_timing", Group: "dates", Type: TypeEnum, Required: false, Anchor: "8.B",
				Options: []string{"A", "B", "C"}}, // A at COE, B days after COE, C other

			// allocations — who-pays checkbox grid (page 3)
			{Name: "county_transfer_tax_payer", Group: "allocations", Type: TypeEnum, Required: false, Anchor: "7.B(1)",
				Options: []string{"A", "B"}}, // A buyer, B seller
			{Name: "city_transfer_tax_payer", Group: "allocations", Type: TypeEnum, Required: false, Anchor: "7.B(2)",
				Options: []string{"A", "B"}},
			{Name: "owner_title_policy_payer", Group: "allocations", Type: TypeEnum, Required: false, Anchor: "7.C(1)",
				Options: []string{"A", "B"}},
			{Name: "escrow_fee_payer", Group: "allocations", Type: TypeEnum, Required: false, Anchor: "7.C(2)",
				Options: []string{"A", "B", "C"}}, // C split
			{Name: "home_warranty", Group: "allocations", Type: TypeBoolean, Required: false, Anchor: "7.D",
				Rules: []ContextRule{{Keyword: "home warranty plan", ImpliedValue: "true"}}},
			{Name: "home_warranty_amount", Group: "allocations", Type: TypeNumber, Required: false, Anchor: "7.D", Label: "at a cost not to exceed"},
			{Name: "hoa_fee_payer", Group: "allocations", Type: TypeEnum, Required: false, Anchor: "7.B(4)",
				Options: []string{"A", "B"}},

			// items (page 4)
			{Name: "items_included", Group: "items", Type: TypeArray, Required: false, Anchor: "9.B", Label: "ADDITIONAL ITEMS INCLUDED"},
			{Name: "items_excluded", Group: "items", Type: TypeArray, Required: false, Anchor: "9.C", Label: "ITEMS EXCLUDED"},

			// escrow (page 5)
			{Name: "escrow_holder", Group: "escrow", Type: TypeString, Required: true, Label: "Escrow Holder shall be"},
			{Name: "title_company", Group: "escrow", Type: TypeString, Required: false, Label: "Title insurance shall be provided by"},
			{Name: "liquidated_damages", Group: "escrow", Type: TypeBoolean, Required: false, Anchor: "21"},
			{Name: "arbitration_of_disputes", Group: "escrow", Type: TypeBoolean, Required: false, Anchor: "22.B"},

			// brokers (page 7)
			{Name: "buyer_brokerage", Group: "brokers", Type: TypeString, Required: true, Label: "Buyer's Brokerage Firm"},
			{Name: "buyer_agent", Group: "brokers", Type: TypeString, Required: false, Label: "By", Scope: "Buyer's Brokerage Firm"},
			{Name: "seller_brokerage", Group: "brokers", Type: TypeString, Required: true, Label: "Seller's Brokerage Firm"},
			{Name: "seller_agent", Group: "brokers", Type: TypeString, Required: false, Label: "By", Scope: "Seller's Brokerage Firm"},

			// signatures (page 7)
			{Name: "buyer_signature_date", Group: "signatures", Type: TypeDate, Required: true, Label: "BUYER Date"},
			{Name: "seller_signature_date", Group: "signatures", Type: TypeDate, Required: false, Label: "SELLER Date"},
			{Name: "acceptance_date", Group: "signatures", Type: TypeDate, Required: false, Label: "acceptance was personally received"},
		},
		PageGroups: map[int][]string{
			0: {"parties", "property", "price", "dates"},
			1: {"financing"},
			2: {"contingencies"},
			3: {"allocations"},
			4: {"items"},
			5: {"escrow"},
			6: {},
			7: {"brokers", "signatures"},
		},
		Instructions: map[string]string{
			"parties":       "Read the names of all buyers and all sellers exactly as printed or handwritten on this purchase agreement page.",
			"property":      "Read the property street address, city, county and assessor's parcel number from this page.",
			"price":         "Read the purchase price and the deposit, loan and down payment amounts from the numbered paragraphs on this page. Report amounts as printed, including cents.",
			"financing":     "Report which financing checkboxes are marked on this page: cash offer, loan type option letter, loan and appraisal contingency boxes, occupancy option letter.",
			"contingencies": "Report the contingency periods (days after acceptance) and which contingency checkboxes are marked on this page.",
			"dates":         "Read the offer preparation date, close of escrow date or day count, and offer expiration date from this page.",
			"allocations":   "For each cost allocation row on this page, report the option letter of the marked checkbox (who pays).",
			"items":         "List the additional items included in the sale and the items excluded, as written on this page.",
			"escrow":        "Read the escrow holder, title company, and whether the liquidated damages and arbitration paragraphs are initialed.",
			"brokers":       "Read the buyer's and seller's brokerage firm names and agent names from this page.",
			"signatures":    "Read the buyer and seller signature dates and the acceptance date from this page.",
		},
	}
}
