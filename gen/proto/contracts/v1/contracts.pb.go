// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestFileRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TemplateFamily string                 `protobuf:"bytes,1,opt,name=template_family,json=templateFamily,proto3" json:"template_family,omitempty"`
	Path           string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetTemplateFamily() string {
	if x != nil {
		return x.TemplateFamily
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TemplateFamily string                 `protobuf:"bytes,1,opt,name=template_family,json=templateFamily,proto3" json:"template_family,omitempty"`
	RootPath       string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden     bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetTemplateFamily() string {
	if x != nil {
		return x.TemplateFamily
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExtractContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractContractRequest) Reset() {
	*x = ExtractContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractRequest) ProtoMessage() {}

func (x *ExtractContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractRequest.ProtoReflect.Descriptor instead.
func (*ExtractContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractContractRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ExtractContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Contract      *Contract              `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractContractResponse) Reset() {
	*x = ExtractContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractResponse) ProtoMessage() {}

func (x *ExtractContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractResponse.ProtoReflect.Descriptor instead.
func (*ExtractContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractContractResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *GetContractRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type ListContractsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TemplateFamily string                 `protobuf:"bytes,1,opt,name=template_family,json=templateFamily,proto3" json:"template_family,omitempty"`
	FromDate       string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate         string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *ListContractsRequest) GetTemplateFamily() string {
	if x != nil {
		return x.TemplateFamily
	}
	return ""
}

func (x *ListContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type ExportContractsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TemplateFamily string                 `protobuf:"bytes,1,opt,name=template_family,json=templateFamily,proto3" json:"template_family,omitempty"`
	FromDate       string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate         string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportContractsRequest) Reset() {
	*x = ExportContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsRequest) ProtoMessage() {}

func (x *ExportContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *ExportContractsRequest) GetTemplateFamily() string {
	if x != nil {
		return x.TemplateFamily
	}
	return ""
}

func (x *ExportContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsResponse) Reset() {
	*x = ExportContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsResponse) ProtoMessage() {}

func (x *ExportContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsResponse.ProtoReflect.Descriptor instead.
func (*ExportContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *ExportContractsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Contract struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TemplateFamily  string                 `protobuf:"bytes,2,opt,name=template_family,json=templateFamily,proto3" json:"template_family,omitempty"`
	PropertyAddress string                 `protobuf:"bytes,3,opt,name=property_address,json=propertyAddress,proto3" json:"property_address,omitempty"`
	BuyerNames      string                 `protobuf:"bytes,4,opt,name=buyer_names,json=buyerNames,proto3" json:"buyer_names,omitempty"`
	SellerNames     string                 `protobuf:"bytes,5,opt,name=seller_names,json=sellerNames,proto3" json:"seller_names,omitempty"`
	PurchasePrice   string                 `protobuf:"bytes,6,opt,name=purchase_price,json=purchasePrice,proto3" json:"purchase_price,omitempty"`   // decimal string, empty when absent
	CloseOfEscrow   string                 `protobuf:"bytes,7,opt,name=close_of_escrow,json=closeOfEscrow,proto3" json:"close_of_escrow,omitempty"` // YYYY-MM-DD, empty when absent
	Completeness    float32                `protobuf:"fixed32,8,opt,name=completeness,proto3" json:"completeness,omitempty"`
	NeedsReview     bool                   `protobuf:"varint,9,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	FieldsJson      string                 `protobuf:"bytes,10,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"` // canonical record including provenance
	CreatedAt       string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetTemplateFamily() string {
	if x != nil {
		return x.TemplateFamily
	}
	return ""
}

func (x *Contract) GetPropertyAddress() string {
	if x != nil {
		return x.PropertyAddress
	}
	return ""
}

func (x *Contract) GetBuyerNames() string {
	if x != nil {
		return x.BuyerNames
	}
	return ""
}

func (x *Contract) GetSellerNames() string {
	if x != nil {
		return x.SellerNames
	}
	return ""
}

func (x *Contract) GetPurchasePrice() string {
	if x != nil {
		return x.PurchasePrice
	}
	return ""
}

func (x *Contract) GetCloseOfEscrow() string {
	if x != nil {
		return x.CloseOfEscrow
	}
	return ""
}

func (x *Contract) GetCompleteness() float32 {
	if x != nil {
		return x.Completeness
	}
	return 0
}

func (x *Contract) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Contract) GetFieldsJson() string {
	if x != nil {
		return x.FieldsJson
	}
	return ""
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"P\n" +
	"\x11IngestFileRequest\x12'\n" +
	"\x0ftemplate_family\x18\x01 \x01(\tR\x0etemplateFamily\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"\x7f\n" +
	"\x16IngestDirectoryRequest\x12'\n" +
	"\x0ftemplate_family\x18\x01 \x01(\tR\x0etemplateFamily\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xdf\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x126\n" +
	"\aresults\x18\x06 \x03(\v2\x1c.contracts.v1.IngestResponseR\aresults\"1\n" +
	"\x16ExtractContractRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"d\n" +
	"\x17ExtractContractResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x122\n" +
	"\bcontract\x18\x02 \x01(\v2\x16.contracts.v1.ContractR\bcontract\"5\n" +
	"\x12GetContractRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"I\n" +
	"\x13GetContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\"u\n" +
	"\x14ListContractsRequest\x12'\n" +
	"\x0ftemplate_family\x18\x01 \x01(\tR\x0etemplateFamily\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"M\n" +
	"\x15ListContractsResponse\x124\n" +
	"\tcontracts\x18\x01 \x03(\v2\x16.contracts.v1.ContractR\tcontracts\"w\n" +
	"\x16ExportContractsRequest\x12'\n" +
	"\x0ftemplate_family\x18\x01 \x01(\tR\x0etemplateFamily\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportContractsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xa7\x03\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0ftemplate_family\x18\x02 \x01(\tR\x0etemplateFamily\x12)\n" +
	"\x10property_address\x18\x03 \x01(\tR\x0fpropertyAddress\x12\x1f\n" +
	"\vbuyer_names\x18\x04 \x01(\tR\n" +
	"buyerNames\x12!\n" +
	"\fseller_names\x18\x05 \x01(\tR\vsellerNames\x12%\n" +
	"\x0epurchase_price\x18\x06 \x01(\tR\rpurchasePrice\x12&\n" +
	"\x0fclose_of_escrow\x18\a \x01(\tR\rcloseOfEscrow\x12\"\n" +
	"\fcompleteness\x18\b \x01(\x02R\fcompleteness\x12!\n" +
	"\fneeds_review\x18\t \x01(\bR\vneedsReview\x12\x1f\n" +
	"\vfields_json\x18\n" +
	" \x01(\tR\n" +
	"fieldsJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt2\xce\x03\n" +
	"\x11ExtractionService\x12K\n" +
	"\n" +
	"IngestFile\x12\x1f.contracts.v1.IngestFileRequest\x1a\x1c.contracts.v1.IngestResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.contracts.v1.IngestDirectoryRequest\x1a%.contracts.v1.IngestDirectoryResponse\x12^\n" +
	"\x0fExtractContract\x12$.contracts.v1.ExtractContractRequest\x1a%.contracts.v1.ExtractContractResponse\x12R\n" +
	"\vGetContract\x12 .contracts.v1.GetContractRequest\x1a!.contracts.v1.GetContractResponse\x12X\n" +
	"\rListContracts\x12\".contracts.v1.ListContractsRequest\x1a#.contracts.v1.ListContractsResponse2o\n" +
	"\rExportService\x12^\n" +
	"\x0fExportContracts\x12$.contracts.v1.ExportContractsRequest\x1a%.contracts.v1.ExportContractsResponseBLZJgithub.com/closingdesk/contract-extract/gen/proto/contracts/v1;contractsv1b\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*IngestFileRequest)(nil),       // 0: contracts.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 1: contracts.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 2: contracts.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 3: contracts.v1.IngestDirectoryResponse
	(*ExtractContractRequest)(nil),  // 4: contracts.v1.ExtractContractRequest
	(*ExtractContractResponse)(nil), // 5: contracts.v1.ExtractContractResponse
	(*GetContractRequest)(nil),      // 6: contracts.v1.GetContractRequest
	(*GetContractResponse)(nil),     // 7: contracts.v1.GetContractResponse
	(*ListContractsRequest)(nil),    // 8: contracts.v1.ListContractsRequest
	(*ListContractsResponse)(nil),   // 9: contracts.v1.ListContractsResponse
	(*ExportContractsRequest)(nil),  // 10: contracts.v1.ExportContractsRequest
	(*ExportContractsResponse)(nil), // 11: contracts.v1.ExportContractsResponse
	(*Contract)(nil),                // 12: contracts.v1.Contract
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	1,  // 0: contracts.v1.IngestDirectoryResponse.results:type_name -> contracts.v1.IngestResponse
	12, // 1: contracts.v1.ExtractContractResponse.contract:type_name -> contracts.v1.Contract
	12, // 2: contracts.v1.GetContractResponse.contract:type_name -> contracts.v1.Contract
	12, // 3: contracts.v1.ListContractsResponse.contracts:type_name -> contracts.v1.Contract
	0,  // 4: contracts.v1.ExtractionService.IngestFile:input_type -> contracts.v1.IngestFileRequest
	2,  // 5: contracts.v1.ExtractionService.IngestDirectory:input_type -> contracts.v1.IngestDirectoryRequest
	4,  // 6: contracts.v1.ExtractionService.ExtractContract:input_type -> contracts.v1.ExtractContractRequest
	6,  // 7: contracts.v1.ExtractionService.GetContract:input_type -> contracts.v1.GetContractRequest
	8,  // 8: contracts.v1.ExtractionService.ListContracts:input_type -> contracts.v1.ListContractsRequest
	10, // 9: contracts.v1.ExportService.ExportContracts:input_type -> contracts.v1.ExportContractsRequest
	1,  // 10: contracts.v1.ExtractionService.IngestFile:output_type -> contracts.v1.IngestResponse
	3,  // 11: contracts.v1.ExtractionService.IngestDirectory:output_type -> contracts.v1.IngestDirectoryResponse
	5,  // 12: contracts.v1.ExtractionService.ExtractContract:output_type -> contracts.v1.ExtractContractResponse
	7,  // 13: contracts.v1.ExtractionService.GetContract:output_type -> contracts.v1.GetContractResponse
	9,  // 14: contracts.v1.ExtractionService.ListContracts:output_type -> contracts.v1.ListContractsResponse
	11, // 15: contracts.v1.ExportService.ExportContracts:output_type -> contracts.v1.ExportContractsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
