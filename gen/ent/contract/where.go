// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// TemplateFamily applies equality check predicate on the "template_family" field. It's identical to TemplateFamilyEQ.
func TemplateFamily(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTemplateFamily, v))
}

// PropertyAddress applies equality check predicate on the "property_address" field. It's identical to PropertyAddressEQ.
func PropertyAddress(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPropertyAddress, v))
}

// BuyerNames applies equality check predicate on the "buyer_names" field. It's identical to BuyerNamesEQ.
func BuyerNames(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBuyerNames, v))
}

// SellerNames applies equality check predicate on the "seller_names" field. It's identical to SellerNamesEQ.
func SellerNames(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSellerNames, v))
}

// PurchasePrice applies equality check predicate on the "purchase_price" field. It's identical to PurchasePriceEQ.
func PurchasePrice(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPurchasePrice, v))
}

// CloseOfEscrow applies equality check predicate on the "close_of_escrow" field. It's identical to CloseOfEscrowEQ.
func CloseOfEscrow(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCloseOfEscrow, v))
}

// Completeness applies equality check predicate on the "completeness" field. It's identical to CompletenessEQ.
func Completeness(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompleteness, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNeedsReview, v))
}

// RecordText applies equality check predicate on the "record_text" field. It's identical to RecordTextEQ.
func RecordText(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRecordText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// TemplateFamilyEQ applies the EQ predicate on the "template_family" field.
func TemplateFamilyEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTemplateFamily, v))
}

// TemplateFamilyNEQ applies the NEQ predicate on the "template_family" field.
func TemplateFamilyNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTemplateFamily, v))
}

// TemplateFamilyIn applies the In predicate on the "template_family" field.
func TemplateFamilyIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTemplateFamily, vs...))
}

// TemplateFamilyNotIn applies the NotIn predicate on the "template_family" field.
func TemplateFamilyNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTemplateFamily, vs...))
}

// TemplateFamilyGT applies the GT predicate on the "template_family" field.
func TemplateFamilyGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTemplateFamily, v))
}

// TemplateFamilyGTE applies the GTE predicate on the "template_family" field.
func TemplateFamilyGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTemplateFamily, v))
}

// TemplateFamilyLT applies the LT predicate on the "template_family" field.
func TemplateFamilyLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTemplateFamily, v))
}

// TemplateFamilyLTE applies the LTE predicate on the "template_family" field.
func TemplateFamilyLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTemplateFamily, v))
}

// TemplateFamilyContains applies the Contains predicate on the "template_family" field.
func TemplateFamilyContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTemplateFamily, v))
}

// TemplateFamilyHasPrefix applies the HasPrefix predicate on the "template_family" field.
func TemplateFamilyHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTemplateFamily, v))
}

// TemplateFamilyHasSuffix applies the HasSuffix predicate on the "template_family" field.
func TemplateFamilyHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTemplateFamily, v))
}

// TemplateFamilyEqualFold applies the EqualFold predicate on the "template_family" field.
func TemplateFamilyEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTemplateFamily, v))
}

// TemplateFamilyContainsFold applies the ContainsFold predicate on the "template_family" field.
func TemplateFamilyContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTemplateFamily, v))
}

// PropertyAddressEQ applies the EQ predicate on the "property_address" field.
func PropertyAddressEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPropertyAddress, v))
}

// PropertyAddressNEQ applies the NEQ predicate on the "property_address" field.
func PropertyAddressNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPropertyAddress, v))
}

// PropertyAddressIn applies the In predicate on the "property_address" field.
func PropertyAddressIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPropertyAddress, vs...))
}

// PropertyAddressNotIn applies the NotIn predicate on the "property_address" field.
func PropertyAddressNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPropertyAddress, vs...))
}

// PropertyAddressGT applies the GT predicate on the "property_address" field.
func PropertyAddressGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPropertyAddress, v))
}

// PropertyAddressGTE applies the GTE predicate on the "property_address" field.
func PropertyAddressGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPropertyAddress, v))
}

// PropertyAddressLT applies the LT predicate on the "property_address" field.
func PropertyAddressLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPropertyAddress, v))
}

// PropertyAddressLTE applies the LTE predicate on the "property_address" field.
func PropertyAddressLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPropertyAddress, v))
}

// PropertyAddressContains applies the Contains predicate on the "property_address" field.
func PropertyAddressContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPropertyAddress, v))
}

// PropertyAddressHasPrefix applies the HasPrefix predicate on the "property_address" field.
func PropertyAddressHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPropertyAddress, v))
}

// PropertyAddressHasSuffix applies the HasSuffix predicate on the "property_address" field.
func PropertyAddressHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPropertyAddress, v))
}

// PropertyAddressIsNil applies the IsNil predicate on the "property_address" field.
func PropertyAddressIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPropertyAddress))
}

// PropertyAddressNotNil applies the NotNil predicate on the "property_address" field.
func PropertyAddressNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPropertyAddress))
}

// PropertyAddressEqualFold applies the EqualFold predicate on the "property_address" field.
func PropertyAddressEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPropertyAddress, v))
}

// PropertyAddressContainsFold applies the ContainsFold predicate on the "property_address" field.
func PropertyAddressContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPropertyAddress, v))
}

// BuyerNamesEQ applies the EQ predicate on the "buyer_names" field.
func BuyerNamesEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBuyerNames, v))
}

// BuyerNamesNEQ applies the NEQ predicate on the "buyer_names" field.
func BuyerNamesNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldBuyerNames, v))
}

// BuyerNamesIn applies the In predicate on the "buyer_names" field.
func BuyerNamesIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldBuyerNames, vs...))
}

// BuyerNamesNotIn applies the NotIn predicate on the "buyer_names" field.
func BuyerNamesNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldBuyerNames, vs...))
}

// BuyerNamesGT applies the GT predicate on the "buyer_names" field.
func BuyerNamesGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldBuyerNames, v))
}

// BuyerNamesGTE applies the GTE predicate on the "buyer_names" field.
func BuyerNamesGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldBuyerNames, v))
}

// BuyerNamesLT applies the LT predicate on the "buyer_names" field.
func BuyerNamesLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldBuyerNames, v))
}

// BuyerNamesLTE applies the LTE predicate on the "buyer_names" field.
func BuyerNamesLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldBuyerNames, v))
}

// BuyerNamesContains applies the Contains predicate on the "buyer_names" field.
func BuyerNamesContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldBuyerNames, v))
}

// BuyerNamesHasPrefix applies the HasPrefix predicate on the "buyer_names" field.
func BuyerNamesHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldBuyerNames, v))
}

// BuyerNamesHasSuffix applies the HasSuffix predicate on the "buyer_names" field.
func BuyerNamesHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldBuyerNames, v))
}

// BuyerNamesIsNil applies the IsNil predicate on the "buyer_names" field.
func BuyerNamesIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldBuyerNames))
}

// BuyerNamesNotNil applies the NotNil predicate on the "buyer_names" field.
func BuyerNamesNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldBuyerNames))
}

// BuyerNamesEqualFold applies the EqualFold predicate on the "buyer_names" field.
func BuyerNamesEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldBuyerNames, v))
}

// BuyerNamesContainsFold applies the ContainsFold predicate on the "buyer_names" field.
func BuyerNamesContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldBuyerNames, v))
}

// SellerNamesEQ applies the EQ predicate on the "seller_names" field.
func SellerNamesEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSellerNames, v))
}

// SellerNamesNEQ applies the NEQ predicate on the "seller_names" field.
func SellerNamesNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSellerNames, v))
}

// SellerNamesIn applies the In predicate on the "seller_names" field.
func SellerNamesIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSellerNames, vs...))
}

// SellerNamesNotIn applies the NotIn predicate on the "seller_names" field.
func SellerNamesNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSellerNames, vs...))
}

// SellerNamesGT applies the GT predicate on the "seller_names" field.
func SellerNamesGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSellerNames, v))
}

// SellerNamesGTE applies the GTE predicate on the "seller_names" field.
func SellerNamesGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSellerNames, v))
}

// SellerNamesLT applies the LT predicate on the "seller_names" field.
func SellerNamesLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSellerNames, v))
}

// SellerNamesLTE applies the LTE predicate on the "seller_names" field.
func SellerNamesLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSellerNames, v))
}

// SellerNamesContains applies the Contains predicate on the "seller_names" field.
func SellerNamesContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSellerNames, v))
}

// SellerNamesHasPrefix applies the HasPrefix predicate on the "seller_names" field.
func SellerNamesHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSellerNames, v))
}

// SellerNamesHasSuffix applies the HasSuffix predicate on the "seller_names" field.
func SellerNamesHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSellerNames, v))
}

// SellerNamesIsNil applies the IsNil predicate on the "seller_names" field.
func SellerNamesIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldSellerNames))
}

// SellerNamesNotNil applies the NotNil predicate on the "seller_names" field.
func SellerNamesNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldSellerNames))
}

// SellerNamesEqualFold applies the EqualFold predicate on the "seller_names" field.
func SellerNamesEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSellerNames, v))
}

// SellerNamesContainsFold applies the ContainsFold predicate on the "seller_names" field.
func SellerNamesContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSellerNames, v))
}

// PurchasePriceEQ applies the EQ predicate on the "purchase_price" field.
func PurchasePriceEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPurchasePrice, v))
}

// PurchasePriceNEQ applies the NEQ predicate on the "purchase_price" field.
func PurchasePriceNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPurchasePrice, v))
}

// PurchasePriceIn applies the In predicate on the "purchase_price" field.
func PurchasePriceIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPurchasePrice, vs...))
}

// PurchasePriceNotIn applies the NotIn predicate on the "purchase_price" field.
func PurchasePriceNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPurchasePrice, vs...))
}

// PurchasePriceGT applies the GT predicate on the "purchase_price" field.
func PurchasePriceGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPurchasePrice, v))
}

// PurchasePriceGTE applies the GTE predicate on the "purchase_price" field.
func PurchasePriceGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPurchasePrice, v))
}

// PurchasePriceLT applies the LT predicate on the "purchase_price" field.
func PurchasePriceLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPurchasePrice, v))
}

// PurchasePriceLTE applies the LTE predicate on the "purchase_price" field.
func PurchasePriceLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPurchasePrice, v))
}

// PurchasePriceIsNil applies the IsNil predicate on the "purchase_price" field.
func PurchasePriceIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPurchasePrice))
}

// PurchasePriceNotNil applies the NotNil predicate on the "purchase_price" field.
func PurchasePriceNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPurchasePrice))
}

// CloseOfEscrowEQ applies the EQ predicate on the "close_of_escrow" field.
func CloseOfEscrowEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCloseOfEscrow, v))
}

// CloseOfEscrowNEQ applies the NEQ predicate on the "close_of_escrow" field.
func CloseOfEscrowNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCloseOfEscrow, v))
}

// CloseOfEscrowIn applies the In predicate on the "close_of_escrow" field.
func CloseOfEscrowIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCloseOfEscrow, vs...))
}

// CloseOfEscrowNotIn applies the NotIn predicate on the "close_of_escrow" field.
func CloseOfEscrowNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCloseOfEscrow, vs...))
}

// CloseOfEscrowGT applies the GT predicate on the "close_of_escrow" field.
func CloseOfEscrowGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCloseOfEscrow, v))
}

// CloseOfEscrowGTE applies the GTE predicate on the "close_of_escrow" field.
func CloseOfEscrowGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCloseOfEscrow, v))
}

// CloseOfEscrowLT applies the LT predicate on the "close_of_escrow" field.
func CloseOfEscrowLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCloseOfEscrow, v))
}

// CloseOfEscrowLTE applies the LTE predicate on the "close_of_escrow" field.
func CloseOfEscrowLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCloseOfEscrow, v))
}

// CloseOfEscrowIsNil applies the IsNil predicate on the "close_of_escrow" field.
func CloseOfEscrowIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCloseOfEscrow))
}

// CloseOfEscrowNotNil applies the NotNil predicate on the "close_of_escrow" field.
func CloseOfEscrowNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCloseOfEscrow))
}

// CompletenessEQ applies the EQ predicate on the "completeness" field.
func CompletenessEQ(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompleteness, v))
}

// CompletenessNEQ applies the NEQ predicate on the "completeness" field.
func CompletenessNEQ(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCompleteness, v))
}

// CompletenessIn applies the In predicate on the "completeness" field.
func CompletenessIn(vs ...float32) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCompleteness, vs...))
}

// CompletenessNotIn applies the NotIn predicate on the "completeness" field.
func CompletenessNotIn(vs ...float32) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCompleteness, vs...))
}

// CompletenessGT applies the GT predicate on the "completeness" field.
func CompletenessGT(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCompleteness, v))
}

// CompletenessGTE applies the GTE predicate on the "completeness" field.
func CompletenessGTE(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCompleteness, v))
}

// CompletenessLT applies the LT predicate on the "completeness" field.
func CompletenessLT(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCompleteness, v))
}

// CompletenessLTE applies the LTE predicate on the "completeness" field.
func CompletenessLTE(v float32) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCompleteness, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldNeedsReview, v))
}

// FieldsJSONIsNil applies the IsNil predicate on the "fields_json" field.
func FieldsJSONIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldFieldsJSON))
}

// FieldsJSONNotNil applies the NotNil predicate on the "fields_json" field.
func FieldsJSONNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldFieldsJSON))
}

// RecordTextEQ applies the EQ predicate on the "record_text" field.
func RecordTextEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRecordText, v))
}

// RecordTextNEQ applies the NEQ predicate on the "record_text" field.
func RecordTextNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRecordText, v))
}

// RecordTextIn applies the In predicate on the "record_text" field.
func RecordTextIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRecordText, vs...))
}

// RecordTextNotIn applies the NotIn predicate on the "record_text" field.
func RecordTextNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRecordText, vs...))
}

// RecordTextGT applies the GT predicate on the "record_text" field.
func RecordTextGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRecordText, v))
}

// RecordTextGTE applies the GTE predicate on the "record_text" field.
func RecordTextGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRecordText, v))
}

// RecordTextLT applies the LT predicate on the "record_text" field.
func RecordTextLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRecordText, v))
}

// RecordTextLTE applies the LTE predicate on the "record_text" field.
func RecordTextLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRecordText, v))
}

// RecordTextContains applies the Contains predicate on the "record_text" field.
func RecordTextContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRecordText, v))
}

// RecordTextHasPrefix applies the HasPrefix predicate on the "record_text" field.
func RecordTextHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRecordText, v))
}

// RecordTextHasSuffix applies the HasSuffix predicate on the "record_text" field.
func RecordTextHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRecordText, v))
}

// RecordTextIsNil applies the IsNil predicate on the "record_text" field.
func RecordTextIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldRecordText))
}

// RecordTextNotNil applies the NotNil predicate on the "record_text" field.
func RecordTextNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldRecordText))
}

// RecordTextEqualFold applies the EqualFold predicate on the "record_text" field.
func RecordTextEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRecordText, v))
}

// RecordTextContainsFold applies the ContainsFold predicate on the "record_text" field.
func RecordTextContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRecordText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.ContractFile) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
