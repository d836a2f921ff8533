// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContract     = "Contract"
	TypeContractFile = "ContractFile"
	TypeExtractJob   = "ExtractJob"
)

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	template_family   *string
	property_address  *string
	buyer_names       *string
	seller_names      *string
	purchase_price    *float64
	addpurchase_price *float64
	close_of_escrow   *time.Time
	completeness      *float32
	addcompleteness   *float32
	needs_review      *bool
	fields_json       *json.RawMessage
	appendfields_json json.RawMessage
	record_text       *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	files             map[uuid.UUID]struct{}
	removedfiles      map[uuid.UUID]struct{}
	clearedfiles      bool
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*Contract, error)
	predicates        []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateFamily sets the "template_family" field.
func (m *ContractMutation) SetTemplateFamily(s string) {
	m.template_family = &s
}

// TemplateFamily returns the value of the "template_family" field in the mutation.
func (m *ContractMutation) TemplateFamily() (r string, exists bool) {
	v := m.template_family
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateFamily returns the old "template_family" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTemplateFamily(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateFamily: %w", err)
	}
	return oldValue.TemplateFamily, nil
}

// ResetTemplateFamily resets all changes to the "template_family" field.
func (m *ContractMutation) ResetTemplateFamily() {
	m.template_family = nil
}

// SetPropertyAddress sets the "property_address" field.
func (m *ContractMutation) SetPropertyAddress(s string) {
	m.property_address = &s
}

// PropertyAddress returns the value of the "property_address" field in the mutation.
func (m *ContractMutation) PropertyAddress() (r string, exists bool) {
	v := m.property_address
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyAddress returns the old "property_address" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPropertyAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyAddress: %w", err)
	}
	return oldValue.PropertyAddress, nil
}

// ClearPropertyAddress clears the value of the "property_address" field.
func (m *ContractMutation) ClearPropertyAddress() {
	m.property_address = nil
	m.clearedFields[contract.FieldPropertyAddress] = struct{}{}
}

// PropertyAddressCleared returns if the "property_address" field was cleared in this mutation.
func (m *ContractMutation) PropertyAddressCleared() bool {
	_, ok := m.clearedFields[contract.FieldPropertyAddress]
	return ok
}

// ResetPropertyAddress resets all changes to the "property_address" field.
func (m *ContractMutation) ResetPropertyAddress() {
	m.property_address = nil
	delete(m.clearedFields, contract.FieldPropertyAddress)
}

// SetBuyerNames sets the "buyer_names" field.
func (m *ContractMutation) SetBuyerNames(s string) {
	m.buyer_names = &s
}

// BuyerNames returns the value of the "buyer_names" field in the mutation.
func (m *ContractMutation) BuyerNames() (r string, exists bool) {
	v := m.buyer_names
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerNames returns the old "buyer_names" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldBuyerNames(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerNames: %w", err)
	}
	return oldValue.BuyerNames, nil
}

// ClearBuyerNames clears the value of the "buyer_names" field.
func (m *ContractMutation) ClearBuyerNames() {
	m.buyer_names = nil
	m.clearedFields[contract.FieldBuyerNames] = struct{}{}
}

// BuyerNamesCleared returns if the "buyer_names" field was cleared in this mutation.
func (m *ContractMutation) BuyerNamesCleared() bool {
	_, ok := m.clearedFields[contract.FieldBuyerNames]
	return ok
}

// ResetBuyerNames resets all changes to the "buyer_names" field.
func (m *ContractMutation) ResetBuyerNames() {
	m.buyer_names = nil
	delete(m.clearedFields, contract.FieldBuyerNames)
}

// SetSellerNames sets the "seller_names" field.
func (m *ContractMutation) SetSellerNames(s string) {
	m.seller_names = &s
}

// SellerNames returns the value of the "seller_names" field in the mutation.
func (m *ContractMutation) SellerNames() (r string, exists bool) {
	v := m.seller_names
	if v == nil {
		return
	}
	return *v, true
}

// OldSellerNames returns the old "seller_names" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSellerNames(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellerNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellerNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellerNames: %w", err)
	}
	return oldValue.SellerNames, nil
}

// ClearSellerNames clears the value of the "seller_names" field.
func (m *ContractMutation) ClearSellerNames() {
	m.seller_names = nil
	m.clearedFields[contract.FieldSellerNames] = struct{}{}
}

// SellerNamesCleared returns if the "seller_names" field was cleared in this mutation.
func (m *ContractMutation) SellerNamesCleared() bool {
	_, ok := m.clearedFields[contract.FieldSellerNames]
	return ok
}

// ResetSellerNames resets all changes to the "seller_names" field.
func (m *ContractMutation) ResetSellerNames() {
	m.seller_names = nil
	delete(m.clearedFields, contract.FieldSellerNames)
}

// SetPurchasePrice sets the "purchase_price" field.
func (m *ContractMutation) SetPurchasePrice(f float64) {
	m.purchase_price = &f
	m.addpurchase_price = nil
}

// PurchasePrice returns the value of the "purchase_price" field in the mutation.
func (m *ContractMutation) PurchasePrice() (r float64, exists bool) {
	v := m.purchase_price
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchasePrice returns the old "purchase_price" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPurchasePrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchasePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchasePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchasePrice: %w", err)
	}
	return oldValue.PurchasePrice, nil
}

// AddPurchasePrice adds f to the "purchase_price" field.
func (m *ContractMutation) AddPurchasePrice(f float64) {
	if m.addpurchase_price != nil {
		*m.addpurchase_price += f
	} else {
		m.addpurchase_price = &f
	}
}

// AddedPurchasePrice returns the value that was added to the "purchase_price" field in this mutation.
func (m *ContractMutation) AddedPurchasePrice() (r float64, exists bool) {
	v := m.addpurchase_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (m *ContractMutation) ClearPurchasePrice() {
	m.purchase_price = nil
	m.addpurchase_price = nil
	m.clearedFields[contract.FieldPurchasePrice] = struct{}{}
}

// PurchasePriceCleared returns if the "purchase_price" field was cleared in this mutation.
func (m *ContractMutation) PurchasePriceCleared() bool {
	_, ok := m.clearedFields[contract.FieldPurchasePrice]
	return ok
}

// ResetPurchasePrice resets all changes to the "purchase_price" field.
func (m *ContractMutation) ResetPurchasePrice() {
	m.purchase_price = nil
	m.addpurchase_price = nil
	delete(m.clearedFields, contract.FieldPurchasePrice)
}

// SetCloseOfEscrow sets the "close_of_escrow" field.
func (m *ContractMutation) SetCloseOfEscrow(t time.Time) {
	m.close_of_escrow = &t
}

// CloseOfEscrow returns the value of the "close_of_escrow" field in the mutation.
func (m *ContractMutation) CloseOfEscrow() (r time.Time, exists bool) {
	v := m.close_of_escrow
	if v == nil {
		return
	}
	return *v, true
}

// OldCloseOfEscrow returns the old "close_of_escrow" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCloseOfEscrow(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCloseOfEscrow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCloseOfEscrow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCloseOfEscrow: %w", err)
	}
	return oldValue.CloseOfEscrow, nil
}

// ClearCloseOfEscrow clears the value of the "close_of_escrow" field.
func (m *ContractMutation) ClearCloseOfEscrow() {
	m.close_of_escrow = nil
	m.clearedFields[contract.FieldCloseOfEscrow] = struct{}{}
}

// CloseOfEscrowCleared returns if the "close_of_escrow" field was cleared in this mutation.
func (m *ContractMutation) CloseOfEscrowCleared() bool {
	_, ok := m.clearedFields[contract.FieldCloseOfEscrow]
	return ok
}

// ResetCloseOfEscrow resets all changes to the "close_of_escrow" field.
func (m *ContractMutation) ResetCloseOfEscrow() {
	m.close_of_escrow = nil
	delete(m.clearedFields, contract.FieldCloseOfEscrow)
}

// SetCompleteness sets the "completeness" field.
func (m *ContractMutation) SetCompleteness(f float32) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *ContractMutation) Completeness() (r float32, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCompleteness(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *ContractMutation) AddCompleteness(f float32) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *ContractMutation) AddedCompleteness() (r float32, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *ContractMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ContractMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ContractMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ContractMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetFieldsJSON sets the "fields_json" field.
func (m *ContractMutation) SetFieldsJSON(jm json.RawMessage) {
	m.fields_json = &jm
	m.appendfields_json = nil
}

// FieldsJSON returns the value of the "fields_json" field in the mutation.
func (m *ContractMutation) FieldsJSON() (r json.RawMessage, exists bool) {
	v := m.fields_json
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldsJSON returns the old "fields_json" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldFieldsJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldsJSON: %w", err)
	}
	return oldValue.FieldsJSON, nil
}

// AppendFieldsJSON adds jm to the "fields_json" field.
func (m *ContractMutation) AppendFieldsJSON(jm json.RawMessage) {
	m.appendfields_json = append(m.appendfields_json, jm...)
}

// AppendedFieldsJSON returns the list of values that were appended to the "fields_json" field in this mutation.
func (m *ContractMutation) AppendedFieldsJSON() (json.RawMessage, bool) {
	if len(m.appendfields_json) == 0 {
		return nil, false
	}
	return m.appendfields_json, true
}

// ClearFieldsJSON clears the value of the "fields_json" field.
func (m *ContractMutation) ClearFieldsJSON() {
	m.fields_json = nil
	m.appendfields_json = nil
	m.clearedFields[contract.FieldFieldsJSON] = struct{}{}
}

// FieldsJSONCleared returns if the "fields_json" field was cleared in this mutation.
func (m *ContractMutation) FieldsJSONCleared() bool {
	_, ok := m.clearedFields[contract.FieldFieldsJSON]
	return ok
}

// ResetFieldsJSON resets all changes to the "fields_json" field.
func (m *ContractMutation) ResetFieldsJSON() {
	m.fields_json = nil
	m.appendfields_json = nil
	delete(m.clearedFields, contract.FieldFieldsJSON)
}

// SetRecordText sets the "record_text" field.
func (m *ContractMutation) SetRecordText(s string) {
	m.record_text = &s
}

// RecordText returns the value of the "record_text" field in the mutation.
func (m *ContractMutation) RecordText() (r string, exists bool) {
	v := m.record_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordText returns the old "record_text" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldRecordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordText: %w", err)
	}
	return oldValue.RecordText, nil
}

// ClearRecordText clears the value of the "record_text" field.
func (m *ContractMutation) ClearRecordText() {
	m.record_text = nil
	m.clearedFields[contract.FieldRecordText] = struct{}{}
}

// RecordTextCleared returns if the "record_text" field was cleared in this mutation.
func (m *ContractMutation) RecordTextCleared() bool {
	_, ok := m.clearedFields[contract.FieldRecordText]
	return ok
}

// ResetRecordText resets all changes to the "record_text" field.
func (m *ContractMutation) ResetRecordText() {
	m.record_text = nil
	delete(m.clearedFields, contract.FieldRecordText)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFileIDs adds the "files" edge to the ContractFile entity by ids.
func (m *ContractMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the ContractFile entity.
func (m *ContractMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the ContractFile entity was cleared.
func (m *ContractMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the ContractFile entity by IDs.
func (m *ContractMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the ContractFile entity.
func (m *ContractMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ContractMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ContractMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ContractMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ContractMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ContractMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ContractMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ContractMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.template_family != nil {
		fields = append(fields, contract.FieldTemplateFamily)
	}
	if m.property_address != nil {
		fields = append(fields, contract.FieldPropertyAddress)
	}
	if m.buyer_names != nil {
		fields = append(fields, contract.FieldBuyerNames)
	}
	if m.seller_names != nil {
		fields = append(fields, contract.FieldSellerNames)
	}
	if m.purchase_price != nil {
		fields = append(fields, contract.FieldPurchasePrice)
	}
	if m.close_of_escrow != nil {
		fields = append(fields, contract.FieldCloseOfEscrow)
	}
	if m.completeness != nil {
		fields = append(fields, contract.FieldCompleteness)
	}
	if m.needs_review != nil {
		fields = append(fields, contract.FieldNeedsReview)
	}
	if m.fields_json != nil {
		fields = append(fields, contract.FieldFieldsJSON)
	}
	if m.record_text != nil {
		fields = append(fields, contract.FieldRecordText)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldTemplateFamily:
		return m.TemplateFamily()
	case contract.FieldPropertyAddress:
		return m.PropertyAddress()
	case contract.FieldBuyerNames:
		return m.BuyerNames()
	case contract.FieldSellerNames:
		return m.SellerNames()
	case contract.FieldPurchasePrice:
		return m.PurchasePrice()
	case contract.FieldCloseOfEscrow:
		return m.CloseOfEscrow()
	case contract.FieldCompleteness:
		return m.Completeness()
	case contract.FieldNeedsReview:
		return m.NeedsReview()
	case contract.FieldFieldsJSON:
		return m.FieldsJSON()
	case contract.FieldRecordText:
		return m.RecordText()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldTemplateFamily:
		return m.OldTemplateFamily(ctx)
	case contract.FieldPropertyAddress:
		return m.OldPropertyAddress(ctx)
	case contract.FieldBuyerNames:
		return m.OldBuyerNames(ctx)
	case contract.FieldSellerNames:
		return m.OldSellerNames(ctx)
	case contract.FieldPurchasePrice:
		return m.OldPurchasePrice(ctx)
	case contract.FieldCloseOfEscrow:
		return m.OldCloseOfEscrow(ctx)
	case contract.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case contract.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case contract.FieldFieldsJSON:
		return m.OldFieldsJSON(ctx)
	case contract.FieldRecordText:
		return m.OldRecordText(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldTemplateFamily:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateFamily(v)
		return nil
	case contract.FieldPropertyAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyAddress(v)
		return nil
	case contract.FieldBuyerNames:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerNames(v)
		return nil
	case contract.FieldSellerNames:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellerNames(v)
		return nil
	case contract.FieldPurchasePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchasePrice(v)
		return nil
	case contract.FieldCloseOfEscrow:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCloseOfEscrow(v)
		return nil
	case contract.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case contract.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case contract.FieldFieldsJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldsJSON(v)
		return nil
	case contract.FieldRecordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordText(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addpurchase_price != nil {
		fields = append(fields, contract.FieldPurchasePrice)
	}
	if m.addcompleteness != nil {
		fields = append(fields, contract.FieldCompleteness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldPurchasePrice:
		return m.AddedPurchasePrice()
	case contract.FieldCompleteness:
		return m.AddedCompleteness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldPurchasePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPurchasePrice(v)
		return nil
	case contract.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldPropertyAddress) {
		fields = append(fields, contract.FieldPropertyAddress)
	}
	if m.FieldCleared(contract.FieldBuyerNames) {
		fields = append(fields, contract.FieldBuyerNames)
	}
	if m.FieldCleared(contract.FieldSellerNames) {
		fields = append(fields, contract.FieldSellerNames)
	}
	if m.FieldCleared(contract.FieldPurchasePrice) {
		fields = append(fields, contract.FieldPurchasePrice)
	}
	if m.FieldCleared(contract.FieldCloseOfEscrow) {
		fields = append(fields, contract.FieldCloseOfEscrow)
	}
	if m.FieldCleared(contract.FieldFieldsJSON) {
		fields = append(fields, contract.FieldFieldsJSON)
	}
	if m.FieldCleared(contract.FieldRecordText) {
		fields = append(fields, contract.FieldRecordText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldPropertyAddress:
		m.ClearPropertyAddress()
		return nil
	case contract.FieldBuyerNames:
		m.ClearBuyerNames()
		return nil
	case contract.FieldSellerNames:
		m.ClearSellerNames()
		return nil
	case contract.FieldPurchasePrice:
		m.ClearPurchasePrice()
		return nil
	case contract.FieldCloseOfEscrow:
		m.ClearCloseOfEscrow()
		return nil
	case contract.FieldFieldsJSON:
		m.ClearFieldsJSON()
		return nil
	case contract.FieldRecordText:
		m.ClearRecordText()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldTemplateFamily:
		m.ResetTemplateFamily()
		return nil
	case contract.FieldPropertyAddress:
		m.ResetPropertyAddress()
		return nil
	case contract.FieldBuyerNames:
		m.ResetBuyerNames()
		return nil
	case contract.FieldSellerNames:
		m.ResetSellerNames()
		return nil
	case contract.FieldPurchasePrice:
		m.ResetPurchasePrice()
		return nil
	case contract.FieldCloseOfEscrow:
		m.ResetCloseOfEscrow()
		return nil
	case contract.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case contract.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case contract.FieldFieldsJSON:
		m.ResetFieldsJSON()
		return nil
	case contract.FieldRecordText:
		m.ResetRecordText()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.files != nil {
		edges = append(edges, contract.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, contract.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfiles {
		edges = append(edges, contract.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeFiles:
		return m.clearedfiles
	case contract.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeFiles:
		m.ResetFiles()
		return nil
	case contract.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// ContractFileMutation represents an operation that mutates the ContractFile nodes in the graph.
type ContractFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_path     *string
	file_ext        *string
	content_hash    *[]byte
	template_family *string
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*ContractFile, error)
	predicates      []predicate.ContractFile
}

var _ ent.Mutation = (*ContractFileMutation)(nil)

// contractfileOption allows management of the mutation configuration using functional options.
type contractfileOption func(*ContractFileMutation)

// newContractFileMutation creates new mutation for the ContractFile entity.
func newContractFileMutation(c config, op Op, opts ...contractfileOption) *ContractFileMutation {
	m := &ContractFileMutation{
		config:        c,
		op:            op,
		typ:           TypeContractFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractFileID sets the ID field of the mutation.
func withContractFileID(id uuid.UUID) contractfileOption {
	return func(m *ContractFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ContractFile
		)
		m.oldValue = func(ctx context.Context) (*ContractFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContractFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContractFile sets the old ContractFile of the mutation.
func withContractFile(node *ContractFile) contractfileOption {
	return func(m *ContractFileMutation) {
		m.oldValue = func(context.Context) (*ContractFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContractFile entities.
func (m *ContractFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContractFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ContractFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ContractFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ContractFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ContractFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ContractFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ContractFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ContractFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ContractFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ContractFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetTemplateFamily sets the "template_family" field.
func (m *ContractFileMutation) SetTemplateFamily(s string) {
	m.template_family = &s
}

// TemplateFamily returns the value of the "template_family" field in the mutation.
func (m *ContractFileMutation) TemplateFamily() (r string, exists bool) {
	v := m.template_family
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateFamily returns the old "template_family" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldTemplateFamily(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateFamily is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateFamily requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateFamily: %w", err)
	}
	return oldValue.TemplateFamily, nil
}

// ResetTemplateFamily resets all changes to the "template_family" field.
func (m *ContractFileMutation) ResetTemplateFamily() {
	m.template_family = nil
}

// SetContractID sets the "contract_id" field.
func (m *ContractFileMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ContractFileMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldContractID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *ContractFileMutation) ClearContractID() {
	m.contract = nil
	m.clearedFields[contractfile.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *ContractFileMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[contractfile.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ContractFileMutation) ResetContractID() {
	m.contract = nil
	delete(m.clearedFields, contractfile.FieldContractID)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ContractFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ContractFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ContractFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ContractFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ContractFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ContractFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ContractFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ContractFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ContractFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ContractFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ContractFileMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[contractfile.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ContractFileMutation) ContractCleared() bool {
	return m.ContractIDCleared() || m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ContractFileMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ContractFileMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the ContractFileMutation builder.
func (m *ContractFileMutation) Where(ps ...predicate.ContractFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContractFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContractFile).
func (m *ContractFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, contractfile.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, contractfile.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, contractfile.FieldContentHash)
	}
	if m.template_family != nil {
		fields = append(fields, contractfile.FieldTemplateFamily)
	}
	if m.contract != nil {
		fields = append(fields, contractfile.FieldContractID)
	}
	if m.uploaded_at != nil {
		fields = append(fields, contractfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contractfile.FieldSourcePath:
		return m.SourcePath()
	case contractfile.FieldFileExt:
		return m.FileExt()
	case contractfile.FieldContentHash:
		return m.ContentHash()
	case contractfile.FieldTemplateFamily:
		return m.TemplateFamily()
	case contractfile.FieldContractID:
		return m.ContractID()
	case contractfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contractfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case contractfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case contractfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case contractfile.FieldTemplateFamily:
		return m.OldTemplateFamily(ctx)
	case contractfile.FieldContractID:
		return m.OldContractID(ctx)
	case contractfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContractFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contractfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case contractfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case contractfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case contractfile.FieldTemplateFamily:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateFamily(v)
		return nil
	case contractfile.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case contractfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContractFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContractFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contractfile.FieldContractID) {
		fields = append(fields, contractfile.FieldContractID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractFileMutation) ClearField(name string) error {
	switch name {
	case contractfile.FieldContractID:
		m.ClearContractID()
		return nil
	}
	return fmt.Errorf("unknown ContractFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractFileMutation) ResetField(name string) error {
	switch name {
	case contractfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case contractfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case contractfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case contractfile.FieldTemplateFamily:
		m.ResetTemplateFamily()
		return nil
	case contractfile.FieldContractID:
		m.ResetContractID()
		return nil
	case contractfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ContractFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, contractfile.EdgeJobs)
	}
	if m.contract != nil {
		edges = append(edges, contractfile.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contractfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case contractfile.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, contractfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contractfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, contractfile.EdgeJobs)
	}
	if m.clearedcontract {
		edges = append(edges, contractfile.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractFileMutation) EdgeCleared(name string) bool {
	switch name {
	case contractfile.EdgeJobs:
		return m.clearedjobs
	case contractfile.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractFileMutation) ClearEdge(name string) error {
	switch name {
	case contractfile.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown ContractFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractFileMutation) ResetEdge(name string) error {
	switch name {
	case contractfile.EdgeJobs:
		m.ResetJobs()
		return nil
	case contractfile.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown ContractFile edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	format                 *string
	started_at             *time.Time
	finished_at            *time.Time
	status                 *string
	error_message          *string
	completeness           *float32
	addcompleteness        *float32
	needs_review           *bool
	record_json            *json.RawMessage
	appendrecord_json      json.RawMessage
	missing_required       *json.RawMessage
	appendmissing_required json.RawMessage
	model_name             *string
	model_params           *json.RawMessage
	appendmodel_params     json.RawMessage
	clearedFields          map[string]struct{}
	file                   *uuid.UUID
	clearedfile            bool
	contract               *uuid.UUID
	clearedcontract        bool
	done                   bool
	oldValue               func(context.Context) (*ExtractJob, error)
	predicates             []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetContractID sets the "contract_id" field.
func (m *ExtractJobMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ExtractJobMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldContractID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *ExtractJobMutation) ClearContractID() {
	m.contract = nil
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *ExtractJobMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ExtractJobMutation) ResetContractID() {
	m.contract = nil
	delete(m.clearedFields, extractjob.FieldContractID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetCompleteness sets the "completeness" field.
func (m *ExtractJobMutation) SetCompleteness(f float32) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *ExtractJobMutation) Completeness() (r float32, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldCompleteness(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *ExtractJobMutation) AddCompleteness(f float32) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *ExtractJobMutation) AddedCompleteness() (r float32, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompleteness clears the value of the "completeness" field.
func (m *ExtractJobMutation) ClearCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
	m.clearedFields[extractjob.FieldCompleteness] = struct{}{}
}

// CompletenessCleared returns if the "completeness" field was cleared in this mutation.
func (m *ExtractJobMutation) CompletenessCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldCompleteness]
	return ok
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *ExtractJobMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
	delete(m.clearedFields, extractjob.FieldCompleteness)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRecordJSON sets the "record_json" field.
func (m *ExtractJobMutation) SetRecordJSON(jm json.RawMessage) {
	m.record_json = &jm
	m.appendrecord_json = nil
}

// RecordJSON returns the value of the "record_json" field in the mutation.
func (m *ExtractJobMutation) RecordJSON() (r json.RawMessage, exists bool) {
	v := m.record_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordJSON returns the old "record_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRecordJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordJSON: %w", err)
	}
	return oldValue.RecordJSON, nil
}

// AppendRecordJSON adds jm to the "record_json" field.
func (m *ExtractJobMutation) AppendRecordJSON(jm json.RawMessage) {
	m.appendrecord_json = append(m.appendrecord_json, jm...)
}

// AppendedRecordJSON returns the list of values that were appended to the "record_json" field in this mutation.
func (m *ExtractJobMutation) AppendedRecordJSON() (json.RawMessage, bool) {
	if len(m.appendrecord_json) == 0 {
		return nil, false
	}
	return m.appendrecord_json, true
}

// ClearRecordJSON clears the value of the "record_json" field.
func (m *ExtractJobMutation) ClearRecordJSON() {
	m.record_json = nil
	m.appendrecord_json = nil
	m.clearedFields[extractjob.FieldRecordJSON] = struct{}{}
}

// RecordJSONCleared returns if the "record_json" field was cleared in this mutation.
func (m *ExtractJobMutation) RecordJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRecordJSON]
	return ok
}

// ResetRecordJSON resets all changes to the "record_json" field.
func (m *ExtractJobMutation) ResetRecordJSON() {
	m.record_json = nil
	m.appendrecord_json = nil
	delete(m.clearedFields, extractjob.FieldRecordJSON)
}

// SetMissingRequired sets the "missing_required" field.
func (m *ExtractJobMutation) SetMissingRequired(jm json.RawMessage) {
	m.missing_required = &jm
	m.appendmissing_required = nil
}

// MissingRequired returns the value of the "missing_required" field in the mutation.
func (m *ExtractJobMutation) MissingRequired() (r json.RawMessage, exists bool) {
	v := m.missing_required
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingRequired returns the old "missing_required" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMissingRequired(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingRequired: %w", err)
	}
	return oldValue.MissingRequired, nil
}

// AppendMissingRequired adds jm to the "missing_required" field.
func (m *ExtractJobMutation) AppendMissingRequired(jm json.RawMessage) {
	m.appendmissing_required = append(m.appendmissing_required, jm...)
}

// AppendedMissingRequired returns the list of values that were appended to the "missing_required" field in this mutation.
func (m *ExtractJobMutation) AppendedMissingRequired() (json.RawMessage, bool) {
	if len(m.appendmissing_required) == 0 {
		return nil, false
	}
	return m.appendmissing_required, true
}

// ClearMissingRequired clears the value of the "missing_required" field.
func (m *ExtractJobMutation) ClearMissingRequired() {
	m.missing_required = nil
	m.appendmissing_required = nil
	m.clearedFields[extractjob.FieldMissingRequired] = struct{}{}
}

// MissingRequiredCleared returns if the "missing_required" field was cleared in this mutation.
func (m *ExtractJobMutation) MissingRequiredCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMissingRequired]
	return ok
}

// ResetMissingRequired resets all changes to the "missing_required" field.
func (m *ExtractJobMutation) ResetMissingRequired() {
	m.missing_required = nil
	m.appendmissing_required = nil
	delete(m.clearedFields, extractjob.FieldMissingRequired)
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// SetModelParams sets the "model_params" field.
func (m *ExtractJobMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *ExtractJobMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *ExtractJobMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *ExtractJobMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *ExtractJobMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[extractjob.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *ExtractJobMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, extractjob.FieldModelParams)
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ContractFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ExtractJobMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ExtractJobMutation) ContractCleared() bool {
	return m.ContractIDCleared() || m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ExtractJobMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.contract != nil {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.completeness != nil {
		fields = append(fields, extractjob.FieldCompleteness)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.record_json != nil {
		fields = append(fields, extractjob.FieldRecordJSON)
	}
	if m.missing_required != nil {
		fields = append(fields, extractjob.FieldMissingRequired)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.model_params != nil {
		fields = append(fields, extractjob.FieldModelParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldContractID:
		return m.ContractID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldCompleteness:
		return m.Completeness()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldRecordJSON:
		return m.RecordJSON()
	case extractjob.FieldMissingRequired:
		return m.MissingRequired()
	case extractjob.FieldModelName:
		return m.ModelName()
	case extractjob.FieldModelParams:
		return m.ModelParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldContractID:
		return m.OldContractID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldRecordJSON:
		return m.OldRecordJSON(ctx)
	case extractjob.FieldMissingRequired:
		return m.OldMissingRequired(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	case extractjob.FieldModelParams:
		return m.OldModelParams(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldRecordJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordJSON(v)
		return nil
	case extractjob.FieldMissingRequired:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingRequired(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractjob.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addcompleteness != nil {
		fields = append(fields, extractjob.FieldCompleteness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldCompleteness:
		return m.AddedCompleteness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldContractID) {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldCompleteness) {
		fields = append(fields, extractjob.FieldCompleteness)
	}
	if m.FieldCleared(extractjob.FieldRecordJSON) {
		fields = append(fields, extractjob.FieldRecordJSON)
	}
	if m.FieldCleared(extractjob.FieldMissingRequired) {
		fields = append(fields, extractjob.FieldMissingRequired)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.FieldCleared(extractjob.FieldModelParams) {
		fields = append(fields, extractjob.FieldModelParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldContractID:
		m.ClearContractID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldCompleteness:
		m.ClearCompleteness()
		return nil
	case extractjob.FieldRecordJSON:
		m.ClearRecordJSON()
		return nil
	case extractjob.FieldMissingRequired:
		m.ClearMissingRequired()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	case extractjob.FieldModelParams:
		m.ClearModelParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldContractID:
		m.ResetContractID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldRecordJSON:
		m.ResetRecordJSON()
		return nil
	case extractjob.FieldMissingRequired:
		m.ResetMissingRequired()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	case extractjob.FieldModelParams:
		m.ResetModelParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.contract != nil {
		edges = append(edges, extractjob.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedcontract {
		edges = append(edges, extractjob.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}
