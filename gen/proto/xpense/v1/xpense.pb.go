// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: xpense/v1/xpense.proto

package xpensepb

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

type Expense struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Amount        float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Date          string                 `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	ReceiptId     string                 `protobuf:"bytes,6,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"` // empty when no photo was archived
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Expense) Reset() {
	*x = Expense{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Expense) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Expense) ProtoMessage() {}

func (x *Expense) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Expense.ProtoReflect.Descriptor instead.
func (*Expense) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{0}
}

func (x *Expense) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Expense) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Expense) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Expense) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Expense) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Expense) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *Expense) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type DraftItem struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description      string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Amount           string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"` // decimal string, two places
	Category         string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	OriginalCategory string                 `protobuf:"bytes,5,opt,name=original_category,json=originalCategory,proto3" json:"original_category,omitempty"` // raw classifier label before canonicalization
	IsTax            bool                   `protobuf:"varint,6,opt,name=is_tax,json=isTax,proto3" json:"is_tax,omitempty"`
	Date             string                 `protobuf:"bytes,7,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	ReceiptId        string                 `protobuf:"bytes,8,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DraftItem) Reset() {
	*x = DraftItem{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DraftItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DraftItem) ProtoMessage() {}

func (x *DraftItem) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DraftItem.ProtoReflect.Descriptor instead.
func (*DraftItem) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{1}
}

func (x *DraftItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DraftItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *DraftItem) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *DraftItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *DraftItem) GetOriginalCategory() string {
	if x != nil {
		return x.OriginalCategory
	}
	return ""
}

func (x *DraftItem) GetIsTax() bool {
	if x != nil {
		return x.IsTax
	}
	return false
}

func (x *DraftItem) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DraftItem) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ReceiptSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subtotal      string                 `protobuf:"bytes,1,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax           string                 `protobuf:"bytes,2,opt,name=tax,proto3" json:"tax,omitempty"`
	Total         string                 `protobuf:"bytes,3,opt,name=total,proto3" json:"total,omitempty"`
	Store         string                 `protobuf:"bytes,4,opt,name=store,proto3" json:"store,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptSummary) Reset() {
	*x = ReceiptSummary{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptSummary) ProtoMessage() {}

func (x *ReceiptSummary) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptSummary.ProtoReflect.Descriptor instead.
func (*ReceiptSummary) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{2}
}

func (x *ReceiptSummary) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *ReceiptSummary) GetTax() string {
	if x != nil {
		return x.Tax
	}
	return ""
}

func (x *ReceiptSummary) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *ReceiptSummary) GetStore() string {
	if x != nil {
		return x.Store
	}
	return ""
}

type Reconciliation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ItemsTotal    string                 `protobuf:"bytes,1,opt,name=items_total,json=itemsTotal,proto3" json:"items_total,omitempty"`
	ReceiptTotal  string                 `protobuf:"bytes,2,opt,name=receipt_total,json=receiptTotal,proto3" json:"receipt_total,omitempty"`
	Matched       bool                   `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Reconciliation) Reset() {
	*x = Reconciliation{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Reconciliation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Reconciliation) ProtoMessage() {}

func (x *Reconciliation) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Reconciliation.ProtoReflect.Descriptor instead.
func (*Reconciliation) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{3}
}

func (x *Reconciliation) GetItemsTotal() string {
	if x != nil {
		return x.ItemsTotal
	}
	return ""
}

func (x *Reconciliation) GetReceiptTotal() string {
	if x != nil {
		return x.ReceiptTotal
	}
	return ""
}

func (x *Reconciliation) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

type Budget struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category           string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Amount             float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	PeriodType         string                 `protobuf:"bytes,4,opt,name=period_type,json=periodType,proto3" json:"period_type,omitempty"`                           // MONTHLY | WEEKLY | YEARLY | CUSTOM
	CurrentPeriodStart string                 `protobuf:"bytes,5,opt,name=current_period_start,json=currentPeriodStart,proto3" json:"current_period_start,omitempty"` // YYYY-MM-DD
	NextResetDate      string                 `protobuf:"bytes,6,opt,name=next_reset_date,json=nextResetDate,proto3" json:"next_reset_date,omitempty"`                // YYYY-MM-DD
	AutoReset          bool                   `protobuf:"varint,7,opt,name=auto_reset,json=autoReset,proto3" json:"auto_reset,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Budget) Reset() {
	*x = Budget{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Budget) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Budget) ProtoMessage() {}

func (x *Budget) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Budget.ProtoReflect.Descriptor instead.
func (*Budget) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{4}
}

func (x *Budget) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Budget) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Budget) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Budget) GetPeriodType() string {
	if x != nil {
		return x.PeriodType
	}
	return ""
}

func (x *Budget) GetCurrentPeriodStart() string {
	if x != nil {
		return x.CurrentPeriodStart
	}
	return ""
}

func (x *Budget) GetNextResetDate() string {
	if x != nil {
		return x.NextResetDate
	}
	return ""
}

func (x *Budget) GetAutoReset() bool {
	if x != nil {
		return x.AutoReset
	}
	return false
}

type AddExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Amount        float64                `protobuf:"fixed64,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Date          string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExpenseRequest) Reset() {
	*x = AddExpenseRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExpenseRequest) ProtoMessage() {}

func (x *AddExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExpenseRequest.ProtoReflect.Descriptor instead.
func (*AddExpenseRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{5}
}

func (x *AddExpenseRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *AddExpenseRequest) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *AddExpenseRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *AddExpenseRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type AddExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExpenseResponse) Reset() {
	*x = AddExpenseResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExpenseResponse) ProtoMessage() {}

func (x *AddExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExpenseResponse.ProtoReflect.Descriptor instead.
func (*AddExpenseResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{6}
}

func (x *AddExpenseResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type ListExpensesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// either a named period ("today" | "week" | "month" | "6months" | "year" | "all") ...
	Period string `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	// ... or explicit bounds (YYYY-MM-DD); explicit bounds win
	FromDate      string `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Category      string `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesRequest) Reset() {
	*x = ListExpensesRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesRequest) ProtoMessage() {}

func (x *ListExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesRequest.ProtoReflect.Descriptor instead.
func (*ListExpensesRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{7}
}

func (x *ListExpensesRequest) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *ListExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListExpensesRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ListExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expenses      []*Expense             `protobuf:"bytes,1,rep,name=expenses,proto3" json:"expenses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesResponse) Reset() {
	*x = ListExpensesResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesResponse) ProtoMessage() {}

func (x *ListExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesResponse.ProtoReflect.Descriptor instead.
func (*ListExpensesResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{8}
}

func (x *ListExpensesResponse) GetExpenses() []*Expense {
	if x != nil {
		return x.Expenses
	}
	return nil
}

type DeleteExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseRequest) Reset() {
	*x = DeleteExpenseRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseRequest) ProtoMessage() {}

func (x *DeleteExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseRequest.ProtoReflect.Descriptor instead.
func (*DeleteExpenseRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteExpenseRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseResponse) Reset() {
	*x = DeleteExpenseResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseResponse) ProtoMessage() {}

func (x *DeleteExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseResponse.ProtoReflect.Descriptor instead.
func (*DeleteExpenseResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{10}
}

type ExportExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesRequest) Reset() {
	*x = ExportExpensesRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesRequest) ProtoMessage() {}

func (x *ExportExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesRequest.ProtoReflect.Descriptor instead.
func (*ExportExpensesRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{11}
}

func (x *ExportExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportExpensesRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ExportExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesResponse) Reset() {
	*x = ExportExpensesResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesResponse) ProtoMessage() {}

func (x *ExportExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesResponse.ProtoReflect.Descriptor instead.
func (*ExportExpensesResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{12}
}

func (x *ExportExpensesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportExpensesResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type UpsertBudgetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Amount        float64                `protobuf:"fixed64,2,opt,name=amount,proto3" json:"amount,omitempty"`
	PeriodType    string                 `protobuf:"bytes,3,opt,name=period_type,json=periodType,proto3" json:"period_type,omitempty"` // defaults to MONTHLY
	AutoReset     bool                   `protobuf:"varint,4,opt,name=auto_reset,json=autoReset,proto3" json:"auto_reset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertBudgetRequest) Reset() {
	*x = UpsertBudgetRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertBudgetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertBudgetRequest) ProtoMessage() {}

func (x *UpsertBudgetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertBudgetRequest.ProtoReflect.Descriptor instead.
func (*UpsertBudgetRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{13}
}

func (x *UpsertBudgetRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UpsertBudgetRequest) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *UpsertBudgetRequest) GetPeriodType() string {
	if x != nil {
		return x.PeriodType
	}
	return ""
}

func (x *UpsertBudgetRequest) GetAutoReset() bool {
	if x != nil {
		return x.AutoReset
	}
	return false
}

type UpsertBudgetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Budget        *Budget                `protobuf:"bytes,1,opt,name=budget,proto3" json:"budget,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpsertBudgetResponse) Reset() {
	*x = UpsertBudgetResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertBudgetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertBudgetResponse) ProtoMessage() {}

func (x *UpsertBudgetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpsertBudgetResponse.ProtoReflect.Descriptor instead.
func (*UpsertBudgetResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{14}
}

func (x *UpsertBudgetResponse) GetBudget() *Budget {
	if x != nil {
		return x.Budget
	}
	return nil
}

type ListBudgetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBudgetsRequest) Reset() {
	*x = ListBudgetsRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBudgetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBudgetsRequest) ProtoMessage() {}

func (x *ListBudgetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBudgetsRequest.ProtoReflect.Descriptor instead.
func (*ListBudgetsRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{15}
}

type ListBudgetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Budgets       []*Budget              `protobuf:"bytes,1,rep,name=budgets,proto3" json:"budgets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBudgetsResponse) Reset() {
	*x = ListBudgetsResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBudgetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBudgetsResponse) ProtoMessage() {}

func (x *ListBudgetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBudgetsResponse.ProtoReflect.Descriptor instead.
func (*ListBudgetsResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{16}
}

func (x *ListBudgetsResponse) GetBudgets() []*Budget {
	if x != nil {
		return x.Budgets
	}
	return nil
}

type DeleteBudgetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBudgetRequest) Reset() {
	*x = DeleteBudgetRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBudgetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBudgetRequest) ProtoMessage() {}

func (x *DeleteBudgetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBudgetRequest.ProtoReflect.Descriptor instead.
func (*DeleteBudgetRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{17}
}

func (x *DeleteBudgetRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteBudgetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBudgetResponse) Reset() {
	*x = DeleteBudgetResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBudgetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBudgetResponse) ProtoMessage() {}

func (x *DeleteBudgetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBudgetResponse.ProtoReflect.Descriptor instead.
func (*DeleteBudgetResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{18}
}

type ScanReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanReceiptRequest) Reset() {
	*x = ScanReceiptRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanReceiptRequest) ProtoMessage() {}

func (x *ScanReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanReceiptRequest.ProtoReflect.Descriptor instead.
func (*ScanReceiptRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{19}
}

func (x *ScanReceiptRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ScanReceiptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ScanReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type ScanProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"` // constants.ScanStage value
	Percent       int32                  `protobuf:"varint,2,opt,name=percent,proto3" json:"percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanProgress) Reset() {
	*x = ScanProgress{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanProgress) ProtoMessage() {}

func (x *ScanProgress) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanProgress.ProtoReflect.Descriptor instead.
func (*ScanProgress) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{20}
}

func (x *ScanProgress) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ScanProgress) GetPercent() int32 {
	if x != nil {
		return x.Percent
	}
	return 0
}

type ScanResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SessionId      string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Stage          string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Items          []*DraftItem           `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	Summary        *ReceiptSummary        `protobuf:"bytes,4,opt,name=summary,proto3" json:"summary,omitempty"`
	Reconciliation *Reconciliation        `protobuf:"bytes,5,opt,name=reconciliation,proto3" json:"reconciliation,omitempty"`
	ReceiptId      string                 `protobuf:"bytes,6,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ScanResult) Reset() {
	*x = ScanResult{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanResult) ProtoMessage() {}

func (x *ScanResult) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanResult.ProtoReflect.Descriptor instead.
func (*ScanResult) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{21}
}

func (x *ScanResult) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ScanResult) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *ScanResult) GetItems() []*DraftItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ScanResult) GetSummary() *ReceiptSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

func (x *ScanResult) GetReconciliation() *Reconciliation {
	if x != nil {
		return x.Reconciliation
	}
	return nil
}

func (x *ScanResult) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ScanReceiptResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ScanReceiptResponse_Progress
	//	*ScanReceiptResponse_Result
	Payload       isScanReceiptResponse_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanReceiptResponse) Reset() {
	*x = ScanReceiptResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanReceiptResponse) ProtoMessage() {}

func (x *ScanReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanReceiptResponse.ProtoReflect.Descriptor instead.
func (*ScanReceiptResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{22}
}

func (x *ScanReceiptResponse) GetPayload() isScanReceiptResponse_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ScanReceiptResponse) GetProgress() *ScanProgress {
	if x != nil {
		if x, ok := x.Payload.(*ScanReceiptResponse_Progress); ok {
			return x.Progress
		}
	}
	return nil
}

func (x *ScanReceiptResponse) GetResult() *ScanResult {
	if x != nil {
		if x, ok := x.Payload.(*ScanReceiptResponse_Result); ok {
			return x.Result
		}
	}
	return nil
}

type isScanReceiptResponse_Payload interface {
	isScanReceiptResponse_Payload()
}

type ScanReceiptResponse_Progress struct {
	Progress *ScanProgress `protobuf:"bytes,1,opt,name=progress,proto3,oneof"`
}

type ScanReceiptResponse_Result struct {
	Result *ScanResult `protobuf:"bytes,2,opt,name=result,proto3,oneof"`
}

func (*ScanReceiptResponse_Progress) isScanReceiptResponse_Payload() {}

func (*ScanReceiptResponse_Result) isScanReceiptResponse_Payload() {}

type CommitItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitItemRequest) Reset() {
	*x = CommitItemRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitItemRequest) ProtoMessage() {}

func (x *CommitItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitItemRequest.ProtoReflect.Descriptor instead.
func (*CommitItemRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{23}
}

func (x *CommitItemRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CommitItemRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type CommitItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ScanResult            `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitItemResponse) Reset() {
	*x = CommitItemResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitItemResponse) ProtoMessage() {}

func (x *CommitItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitItemResponse.ProtoReflect.Descriptor instead.
func (*CommitItemResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{24}
}

func (x *CommitItemResponse) GetResult() *ScanResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type CommitAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitAllRequest) Reset() {
	*x = CommitAllRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitAllRequest) ProtoMessage() {}

func (x *CommitAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitAllRequest.ProtoReflect.Descriptor instead.
func (*CommitAllRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{25}
}

func (x *CommitAllRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type CommitAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ScanResult            `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitAllResponse) Reset() {
	*x = CommitAllResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitAllResponse) ProtoMessage() {}

func (x *CommitAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitAllResponse.ProtoReflect.Descriptor instead.
func (*CommitAllResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{26}
}

func (x *CommitAllResponse) GetResult() *ScanResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ResetSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetSessionRequest) Reset() {
	*x = ResetSessionRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetSessionRequest) ProtoMessage() {}

func (x *ResetSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetSessionRequest.ProtoReflect.Descriptor instead.
func (*ResetSessionRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{27}
}

func (x *ResetSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ResetSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetSessionResponse) Reset() {
	*x = ResetSessionResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetSessionResponse) ProtoMessage() {}

func (x *ResetSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetSessionResponse.ProtoReflect.Descriptor instead.
func (*ResetSessionResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{28}
}

type ResumeSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeSessionRequest) Reset() {
	*x = ResumeSessionRequest{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeSessionRequest) ProtoMessage() {}

func (x *ResumeSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeSessionRequest.ProtoReflect.Descriptor instead.
func (*ResumeSessionRequest) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{29}
}

func (x *ResumeSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ResumeSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Found         bool                   `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Result        *ScanResult            `protobuf:"bytes,2,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeSessionResponse) Reset() {
	*x = ResumeSessionResponse{}
	mi := &file_xpense_v1_xpense_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeSessionResponse) ProtoMessage() {}

func (x *ResumeSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_xpense_v1_xpense_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeSessionResponse.ProtoReflect.Descriptor instead.
func (*ResumeSessionResponse) Descriptor() ([]byte, []int) {
	return file_xpense_v1_xpense_proto_rawDescGZIP(), []int{30}
}

func (x *ResumeSessionResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

func (x *ResumeSessionResponse) GetResult() *ScanResult {
	if x != nil {
		return x.Result
	}
	return nil
}

var File_xpense_v1_xpense_proto protoreflect.FileDescriptor

const file_xpense_v1_xpense_proto_rawDesc = "" +
	"\n" +
	"\x16xpense/v1/xpense.proto\x12\txpense.v1\"\xc1\x01\n" +
	"\aExpense\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x01R\x06amount\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x06 \x01(\tR\treceiptId\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\xe8\x01\n" +
	"\tDraftItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12+\n" +
	"\x11original_category\x18\x05 \x01(\tR\x10originalCategory\x12\x15\n" +
	"\x06is_tax\x18\x06 \x01(\bR\x05isTax\x12\x12\n" +
	"\x04date\x18\a \x01(\tR\x04date\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\b \x01(\tR\treceiptId\"j\n" +
	"\x0eReceiptSummary\x12\x1a\n" +
	"\bsubtotal\x18\x01 \x01(\tR\bsubtotal\x12\x10\n" +
	"\x03tax\x18\x02 \x01(\tR\x03tax\x12\x14\n" +
	"\x05total\x18\x03 \x01(\tR\x05total\x12\x14\n" +
	"\x05store\x18\x04 \x01(\tR\x05store\"p\n" +
	"\x0eReconciliation\x12\x1f\n" +
	"\vitems_total\x18\x01 \x01(\tR\n" +
	"itemsTotal\x12#\n" +
	"\rreceipt_total\x18\x02 \x01(\tR\freceiptTotal\x12\x18\n" +
	"\amatched\x18\x03 \x01(\bR\amatched\"\xe6\x01\n" +
	"\x06Budget\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x01R\x06amount\x12\x1f\n" +
	"\vperiod_type\x18\x04 \x01(\tR\n" +
	"periodType\x120\n" +
	"\x14current_period_start\x18\x05 \x01(\tR\x12currentPeriodStart\x12&\n" +
	"\x0fnext_reset_date\x18\x06 \x01(\tR\rnextResetDate\x12\x1d\n" +
	"\n" +
	"auto_reset\x18\a \x01(\bR\tautoReset\"}\n" +
	"\x11AddExpenseRequest\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x01R\x06amount\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\"B\n" +
	"\x12AddExpenseResponse\x12,\n" +
	"\aexpense\x18\x01 \x01(\v2\x12.xpense.v1.ExpenseR\aexpense\"\x7f\n" +
	"\x13ListExpensesRequest\x12\x16\n" +
	"\x06period\x18\x01 \x01(\tR\x06period\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\"F\n" +
	"\x14ListExpensesResponse\x12.\n" +
	"\bexpenses\x18\x01 \x03(\v2\x12.xpense.v1.ExpenseR\bexpenses\"&\n" +
	"\x14DeleteExpenseRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteExpenseResponse\"i\n" +
	"\x15ExportExpensesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"H\n" +
	"\x16ExportExpensesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x89\x01\n" +
	"\x13UpsertBudgetRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x01R\x06amount\x12\x1f\n" +
	"\vperiod_type\x18\x03 \x01(\tR\n" +
	"periodType\x12\x1d\n" +
	"\n" +
	"auto_reset\x18\x04 \x01(\bR\tautoReset\"A\n" +
	"\x14UpsertBudgetResponse\x12)\n" +
	"\x06budget\x18\x01 \x01(\v2\x11.xpense.v1.BudgetR\x06budget\"\x14\n" +
	"\x12ListBudgetsRequest\"B\n" +
	"\x13ListBudgetsResponse\x12+\n" +
	"\abudgets\x18\x01 \x03(\v2\x11.xpense.v1.BudgetR\abudgets\"%\n" +
	"\x13DeleteBudgetRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x16\n" +
	"\x14DeleteBudgetResponse\"i\n" +
	"\x12ScanReceiptRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\">\n" +
	"\fScanProgress\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12\x18\n" +
	"\apercent\x18\x02 \x01(\x05R\apercent\"\x84\x02\n" +
	"\n" +
	"ScanResult\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12*\n" +
	"\x05items\x18\x03 \x03(\v2\x14.xpense.v1.DraftItemR\x05items\x123\n" +
	"\asummary\x18\x04 \x01(\v2\x19.xpense.v1.ReceiptSummaryR\asummary\x12A\n" +
	"\x0ereconciliation\x18\x05 \x01(\v2\x19.xpense.v1.ReconciliationR\x0ereconciliation\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x06 \x01(\tR\treceiptId\"\x88\x01\n" +
	"\x13ScanReceiptResponse\x125\n" +
	"\bprogress\x18\x01 \x01(\v2\x17.xpense.v1.ScanProgressH\x00R\bprogress\x12/\n" +
	"\x06result\x18\x02 \x01(\v2\x15.xpense.v1.ScanResultH\x00R\x06resultB\t\n" +
	"\apayload\"K\n" +
	"\x11CommitItemRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\"C\n" +
	"\x12CommitItemResponse\x12-\n" +
	"\x06result\x18\x01 \x01(\v2\x15.xpense.v1.ScanResultR\x06result\"1\n" +
	"\x10CommitAllRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"B\n" +
	"\x11CommitAllResponse\x12-\n" +
	"\x06result\x18\x01 \x01(\v2\x15.xpense.v1.ScanResultR\x06result\"4\n" +
	"\x13ResetSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x16\n" +
	"\x14ResetSessionResponse\"5\n" +
	"\x14ResumeSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\\\n" +
	"\x15ResumeSessionResponse\x12\x14\n" +
	"\x05found\x18\x01 \x01(\bR\x05found\x12-\n" +
	"\x06result\x18\x02 \x01(\v2\x15.xpense.v1.ScanResultR\x06result2\xd8\x02\n" +
	"\x0fExpensesService\x12I\n" +
	"\n" +
	"AddExpense\x12\x1c.xpense.v1.AddExpenseRequest\x1a\x1d.xpense.v1.AddExpenseResponse\x12O\n" +
	"\fListExpenses\x12\x1e.xpense.v1.ListExpensesRequest\x1a\x1f.xpense.v1.ListExpensesResponse\x12R\n" +
	"\rDeleteExpense\x12\x1f.xpense.v1.DeleteExpenseRequest\x1a .xpense.v1.DeleteExpenseResponse\x12U\n" +
	"\x0eExportExpenses\x12 .xpense.v1.ExportExpensesRequest\x1a!.xpense.v1.ExportExpensesResponse2\x80\x02\n" +
	"\x0eBudgetsService\x12O\n" +
	"\fUpsertBudget\x12\x1e.xpense.v1.UpsertBudgetRequest\x1a\x1f.xpense.v1.UpsertBudgetResponse\x12L\n" +
	"\vListBudgets\x12\x1d.xpense.v1.ListBudgetsRequest\x1a\x1e.xpense.v1.ListBudgetsResponse\x12O\n" +
	"\fDeleteBudget\x12\x1e.xpense.v1.DeleteBudgetRequest\x1a\x1f.xpense.v1.DeleteBudgetResponse2\x95\x03\n" +
	"\vScanService\x12N\n" +
	"\vScanReceipt\x12\x1d.xpense.v1.ScanReceiptRequest\x1a\x1e.xpense.v1.ScanReceiptResponse0\x01\x12I\n" +
	"\n" +
	"CommitItem\x12\x1c.xpense.v1.CommitItemRequest\x1a\x1d.xpense.v1.CommitItemResponse\x12F\n" +
	"\tCommitAll\x12\x1b.xpense.v1.CommitAllRequest\x1a\x1c.xpense.v1.CommitAllResponse\x12O\n" +
	"\fResetSession\x12\x1e.xpense.v1.ResetSessionRequest\x1a\x1f.xpense.v1.ResetSessionResponse\x12R\n" +
	"\rResumeSession\x12\x1f.xpense.v1.ResumeSessionRequest\x1a .xpense.v1.ResumeSessionResponseBBZ@github.com/xpenseai/expense-tracker/gen/proto/xpense/v1;xpensepbb\x06proto3"

var (
	file_xpense_v1_xpense_proto_rawDescOnce sync.Once
	file_xpense_v1_xpense_proto_rawDescData []byte
)

func file_xpense_v1_xpense_proto_rawDescGZIP() []byte {
	file_xpense_v1_xpense_proto_rawDescOnce.Do(func() {
		file_xpense_v1_xpense_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_xpense_v1_xpense_proto_rawDesc), len(file_xpense_v1_xpense_proto_rawDesc)))
	})
	return file_xpense_v1_xpense_proto_rawDescData
}

var file_xpense_v1_xpense_proto_msgTypes = make([]protoimpl.MessageInfo, 31)
var file_xpense_v1_xpense_proto_goTypes = []any{
	(*Expense)(nil),                // 0: xpense.v1.Expense
	(*DraftItem)(nil),              // 1: xpense.v1.DraftItem
	(*ReceiptSummary)(nil),         // 2: xpense.v1.ReceiptSummary
	(*Reconciliation)(nil),         // 3: xpense.v1.Reconciliation
	(*Budget)(nil),                 // 4: xpense.v1.Budget
	(*AddExpenseRequest)(nil),      // 5: xpense.v1.AddExpenseRequest
	(*AddExpenseResponse)(nil),     // 6: xpense.v1.AddExpenseResponse
	(*ListExpensesRequest)(nil),    // 7: xpense.v1.ListExpensesRequest
	(*ListExpensesResponse)(nil),   // 8: xpense.v1.ListExpensesResponse
	(*DeleteExpenseRequest)(nil),   // 9: xpense.v1.DeleteExpenseRequest
	(*DeleteExpenseResponse)(nil),  // 10: xpense.v1.DeleteExpenseResponse
	(*ExportExpensesRequest)(nil),  // 11: xpense.v1.ExportExpensesRequest
	(*ExportExpensesResponse)(nil), // 12: xpense.v1.ExportExpensesResponse
	(*UpsertBudgetRequest)(nil),    // 13: xpense.v1.UpsertBudgetRequest
	(*UpsertBudgetResponse)(nil),   // 14: xpense.v1.UpsertBudgetResponse
	(*ListBudgetsRequest)(nil),     // 15: xpense.v1.ListBudgetsRequest
	(*ListBudgetsResponse)(nil),    // 16: xpense.v1.ListBudgetsResponse
	(*DeleteBudgetRequest)(nil),    // 17: xpense.v1.DeleteBudgetRequest
	(*DeleteBudgetResponse)(nil),   // 18: xpense.v1.DeleteBudgetResponse
	(*ScanReceiptRequest)(nil),     // 19: xpense.v1.ScanReceiptRequest
	(*ScanProgress)(nil),           // 20: xpense.v1.ScanProgress
	(*ScanResult)(nil),             // 21: xpense.v1.ScanResult
	(*ScanReceiptResponse)(nil),    // 22: xpense.v1.ScanReceiptResponse
	(*CommitItemRequest)(nil),      // 23: xpense.v1.CommitItemRequest
	(*CommitItemResponse)(nil),     // 24: xpense.v1.CommitItemResponse
	(*CommitAllRequest)(nil),       // 25: xpense.v1.CommitAllRequest
	(*CommitAllResponse)(nil),      // 26: xpense.v1.CommitAllResponse
	(*ResetSessionRequest)(nil),    // 27: xpense.v1.ResetSessionRequest
	(*ResetSessionResponse)(nil),   // 28: xpense.v1.ResetSessionResponse
	(*ResumeSessionRequest)(nil),   // 29: xpense.v1.ResumeSessionRequest
	(*ResumeSessionResponse)(nil),  // 30: xpense.v1.ResumeSessionResponse
}
var file_xpense_v1_xpense_proto_depIdxs = []int32{
	0,  // 0: xpense.v1.AddExpenseResponse.expense:type_name -> xpense.v1.Expense
	0,  // 1: xpense.v1.ListExpensesResponse.expenses:type_name -> xpense.v1.Expense
	4,  // 2: xpense.v1.UpsertBudgetResponse.budget:type_name -> xpense.v1.Budget
	4,  // 3: xpense.v1.ListBudgetsResponse.budgets:type_name -> xpense.v1.Budget
	1,  // 4: xpense.v1.ScanResult.items:type_name -> xpense.v1.DraftItem
	2,  // 5: xpense.v1.ScanResult.summary:type_name -> xpense.v1.ReceiptSummary
	3,  // 6: xpense.v1.ScanResult.reconciliation:type_name -> xpense.v1.Reconciliation
	20, // 7: xpense.v1.ScanReceiptResponse.progress:type_name -> xpense.v1.ScanProgress
	21, // 8: xpense.v1.ScanReceiptResponse.result:type_name -> xpense.v1.ScanResult
	21, // 9: xpense.v1.CommitItemResponse.result:type_name -> xpense.v1.ScanResult
	21, // 10: xpense.v1.CommitAllResponse.result:type_name -> xpense.v1.ScanResult
	21, // 11: xpense.v1.ResumeSessionResponse.result:type_name -> xpense.v1.ScanResult
	5,  // 12: xpense.v1.ExpensesService.AddExpense:input_type -> xpense.v1.AddExpenseRequest
	7,  // 13: xpense.v1.ExpensesService.ListExpenses:input_type -> xpense.v1.ListExpensesRequest
	9,  // 14: xpense.v1.ExpensesService.DeleteExpense:input_type -> xpense.v1.DeleteExpenseRequest
	11, // 15: xpense.v1.ExpensesService.ExportExpenses:input_type -> xpense.v1.ExportExpensesRequest
	13, // 16: xpense.v1.BudgetsService.UpsertBudget:input_type -> xpense.v1.UpsertBudgetRequest
	15, // 17: xpense.v1.BudgetsService.ListBudgets:input_type -> xpense.v1.ListBudgetsRequest
	17, // 18: xpense.v1.BudgetsService.DeleteBudget:input_type -> xpense.v1.DeleteBudgetRequest
	19, // 19: xpense.v1.ScanService.ScanReceipt:input_type -> xpense.v1.ScanReceiptRequest
	23, // 20: xpense.v1.ScanService.CommitItem:input_type -> xpense.v1.CommitItemRequest
	25, // 21: xpense.v1.ScanService.CommitAll:input_type -> xpense.v1.CommitAllRequest
	27, // 22: xpense.v1.ScanService.ResetSession:input_type -> xpense.v1.ResetSessionRequest
	29, // 23: xpense.v1.ScanService.ResumeSession:input_type -> xpense.v1.ResumeSessionRequest
	6,  // 24: xpense.v1.ExpensesService.AddExpense:output_type -> xpense.v1.AddExpenseResponse
	8,  // 25: xpense.v1.ExpensesService.ListExpenses:output_type -> xpense.v1.ListExpensesResponse
	10, // 26: xpense.v1.ExpensesService.DeleteExpense:output_type -> xpense.v1.DeleteExpenseResponse
	12, // 27: xpense.v1.ExpensesService.ExportExpenses:output_type -> xpense.v1.ExportExpensesResponse
	14, // 28: xpense.v1.BudgetsService.UpsertBudget:output_type -> xpense.v1.UpsertBudgetResponse
	16, // 29: xpense.v1.BudgetsService.ListBudgets:output_type -> xpense.v1.ListBudgetsResponse
	18, // 30: xpense.v1.BudgetsService.DeleteBudget:output_type -> xpense.v1.DeleteBudgetResponse
	22, // 31: xpense.v1.ScanService.ScanReceipt:output_type -> xpense.v1.ScanReceiptResponse
	24, // 32: xpense.v1.ScanService.CommitItem:output_type -> xpense.v1.CommitItemResponse
	26, // 33: xpense.v1.ScanService.CommitAll:output_type -> xpense.v1.CommitAllResponse
	28, // 34: xpense.v1.ScanService.ResetSession:output_type -> xpense.v1.ResetSessionResponse
	30, // 35: xpense.v1.ScanService.ResumeSession:output_type -> xpense.v1.ResumeSessionResponse
	24, // [24:36] is the sub-list for method output_type
	12, // [12:24] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_xpense_v1_xpense_proto_init() }
func file_xpense_v1_xpense_proto_init() {
	if File_xpense_v1_xpense_proto != nil {
		return
	}
	file_xpense_v1_xpense_proto_msgTypes[22].OneofWrappers = []any{
		(*ScanReceiptResponse_Progress)(nil),
		(*ScanReceiptResponse_Result)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_xpense_v1_xpense_proto_rawDesc), len(file_xpense_v1_xpense_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   31,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_xpense_v1_xpense_proto_goTypes,
		DependencyIndexes: file_xpense_v1_xpense_proto_depIdxs,
		MessageInfos:      file_xpense_v1_xpense_proto_msgTypes,
	}.Build()
	File_xpense_v1_xpense_proto = out.File
	file_xpense_v1_xpense_proto_goTypes = nil
	file_xpense_v1_xpense_proto_depIdxs = nil
}
