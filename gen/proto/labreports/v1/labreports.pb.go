// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: labreports/v1/labreports.proto

package labreportsv1

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

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{0}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{2}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{3}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{4}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessReportRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	// Absolute path to a PDF or image on a filesystem the server can read.
	Path string `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	// When true the request returns after the job is queued instead of
	// waiting for extraction to finish.
	Async         bool `protobuf:"varint,3,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReportRequest) Reset() {
	*x = ProcessReportRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReportRequest) ProtoMessage() {}

func (x *ProcessReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReportRequest.ProtoReflect.Descriptor instead.
func (*ProcessReportRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessReportRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ProcessReportRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ProcessReportRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ProcessReportResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Success          bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	PanelId          string                 `protobuf:"bytes,2,opt,name=panel_id,json=panelId,proto3" json:"panel_id,omitempty"`
	FileId           string                 `protobuf:"bytes,3,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	BiomarkerCount   int32                  `protobuf:"varint,4,opt,name=biomarker_count,json=biomarkerCount,proto3" json:"biomarker_count,omitempty"`
	ExtractionMethod string                 `protobuf:"bytes,5,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	Patient          *PatientInfo           `protobuf:"bytes,6,opt,name=patient,proto3" json:"patient,omitempty"`
	Error            string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ProcessReportResponse) Reset() {
	*x = ProcessReportResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReportResponse) ProtoMessage() {}

func (x *ProcessReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReportResponse.ProtoReflect.Descriptor instead.
func (*ProcessReportResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessReportResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ProcessReportResponse) GetPanelId() string {
	if x != nil {
		return x.PanelId
	}
	return ""
}

func (x *ProcessReportResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ProcessReportResponse) GetBiomarkerCount() int32 {
	if x != nil {
		return x.BiomarkerCount
	}
	return 0
}

func (x *ProcessReportResponse) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *ProcessReportResponse) GetPatient() *PatientInfo {
	if x != nil {
		return x.Patient
	}
	return nil
}

func (x *ProcessReportResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListPanelsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	// Optional YYYY-MM-DD bounds on panel creation time.
	FromDate      string `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPanelsRequest) Reset() {
	*x = ListPanelsRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPanelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPanelsRequest) ProtoMessage() {}

func (x *ListPanelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPanelsRequest.ProtoReflect.Descriptor instead.
func (*ListPanelsRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{7}
}

func (x *ListPanelsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListPanelsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListPanelsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListPanelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Panels        []*Panel               `protobuf:"bytes,1,rep,name=panels,proto3" json:"panels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPanelsResponse) Reset() {
	*x = ListPanelsResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPanelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPanelsResponse) ProtoMessage() {}

func (x *ListPanelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPanelsResponse.ProtoReflect.Descriptor instead.
func (*ListPanelsResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{8}
}

func (x *ListPanelsResponse) GetPanels() []*Panel {
	if x != nil {
		return x.Panels
	}
	return nil
}

type GetPanelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PanelId       string                 `protobuf:"bytes,1,opt,name=panel_id,json=panelId,proto3" json:"panel_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPanelRequest) Reset() {
	*x = GetPanelRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPanelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPanelRequest) ProtoMessage() {}

func (x *GetPanelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPanelRequest.ProtoReflect.Descriptor instead.
func (*GetPanelRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{9}
}

func (x *GetPanelRequest) GetPanelId() string {
	if x != nil {
		return x.PanelId
	}
	return ""
}

type GetPanelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Panel         *Panel                 `protobuf:"bytes,1,opt,name=panel,proto3" json:"panel,omitempty"`
	Biomarkers    []*Biomarker           `protobuf:"bytes,2,rep,name=biomarkers,proto3" json:"biomarkers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPanelResponse) Reset() {
	*x = GetPanelResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPanelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPanelResponse) ProtoMessage() {}

func (x *GetPanelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPanelResponse.ProtoReflect.Descriptor instead.
func (*GetPanelResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{10}
}

func (x *GetPanelResponse) GetPanel() *Panel {
	if x != nil {
		return x.Panel
	}
	return nil
}

func (x *GetPanelResponse) GetBiomarkers() []*Biomarker {
	if x != nil {
		return x.Biomarkers
	}
	return nil
}

type ExportPanelsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate  string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate    string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	// Directory the workbook is written to; defaults to the working directory.
	OutPath       string `protobuf:"bytes,4,opt,name=out_path,json=outPath,proto3" json:"out_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPanelsRequest) Reset() {
	*x = ExportPanelsRequest{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPanelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPanelsRequest) ProtoMessage() {}

func (x *ExportPanelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPanelsRequest.ProtoReflect.Descriptor instead.
func (*ExportPanelsRequest) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{11}
}

func (x *ExportPanelsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportPanelsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportPanelsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportPanelsRequest) GetOutPath() string {
	if x != nil {
		return x.OutPath
	}
	return ""
}

type ExportPanelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPanelsResponse) Reset() {
	*x = ExportPanelsResponse{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPanelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPanelsResponse) ProtoMessage() {}

func (x *ExportPanelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPanelsResponse.ProtoReflect.Descriptor instead.
func (*ExportPanelsResponse) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{12}
}

func (x *ExportPanelsResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExportPanelsResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type Panel struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId        string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Name             string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Provider         string                 `protobuf:"bytes,4,opt,name=provider,proto3" json:"provider,omitempty"`
	CollectionDate   string                 `protobuf:"bytes,5,opt,name=collection_date,json=collectionDate,proto3" json:"collection_date,omitempty"`
	Status           string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	SourcePath       string                 `protobuf:"bytes,7,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	ExtractionMethod string                 `protobuf:"bytes,8,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	Patient          *PatientInfo           `protobuf:"bytes,9,opt,name=patient,proto3" json:"patient,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Panel) Reset() {
	*x = Panel{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Panel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Panel) ProtoMessage() {}

func (x *Panel) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Panel.ProtoReflect.Descriptor instead.
func (*Panel) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{13}
}

func (x *Panel) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Panel) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Panel) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Panel) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Panel) GetCollectionDate() string {
	if x != nil {
		return x.CollectionDate
	}
	return ""
}

func (x *Panel) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Panel) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Panel) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *Panel) GetPatient() *PatientInfo {
	if x != nil {
		return x.Patient
	}
	return nil
}

func (x *Panel) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Panel) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Biomarker struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PanelId       string                 `protobuf:"bytes,2,opt,name=panel_id,json=panelId,proto3" json:"panel_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Value         float64                `protobuf:"fixed64,4,opt,name=value,proto3" json:"value,omitempty"`
	Unit          *string                `protobuf:"bytes,5,opt,name=unit,proto3,oneof" json:"unit,omitempty"`
	ReferenceMin  *float64               `protobuf:"fixed64,6,opt,name=reference_min,json=referenceMin,proto3,oneof" json:"reference_min,omitempty"`
	ReferenceMax  *float64               `protobuf:"fixed64,7,opt,name=reference_max,json=referenceMax,proto3,oneof" json:"reference_max,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Biomarker) Reset() {
	*x = Biomarker{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Biomarker) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Biomarker) ProtoMessage() {}

func (x *Biomarker) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Biomarker.ProtoReflect.Descriptor instead.
func (*Biomarker) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{14}
}

func (x *Biomarker) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Biomarker) GetPanelId() string {
	if x != nil {
		return x.PanelId
	}
	return ""
}

func (x *Biomarker) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Biomarker) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Biomarker) GetUnit() string {
	if x != nil && x.Unit != nil {
		return *x.Unit
	}
	return ""
}

func (x *Biomarker) GetReferenceMin() float64 {
	if x != nil && x.ReferenceMin != nil {
		return *x.ReferenceMin
	}
	return 0
}

func (x *Biomarker) GetReferenceMax() float64 {
	if x != nil && x.ReferenceMax != nil {
		return *x.ReferenceMax
	}
	return 0
}

func (x *Biomarker) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Biomarker) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type PatientInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FirstName     string                 `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	DateOfBirth   string                 `protobuf:"bytes,3,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"`
	Gender        string                 `protobuf:"bytes,4,opt,name=gender,proto3" json:"gender,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PatientInfo) Reset() {
	*x = PatientInfo{}
	mi := &file_labreports_v1_labreports_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PatientInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PatientInfo) ProtoMessage() {}

func (x *PatientInfo) ProtoReflect() protoreflect.Message {
	mi := &file_labreports_v1_labreports_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PatientInfo.ProtoReflect.Descriptor instead.
func (*PatientInfo) Descriptor() ([]byte, []int) {
	return file_labreports_v1_labreports_proto_rawDescGZIP(), []int{15}
}

func (x *PatientInfo) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *PatientInfo) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *PatientInfo) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *PatientInfo) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

var File_labreports_v1_labreports_proto protoreflect.FileDescriptor

const file_labreports_v1_labreports_proto_rawDesc = "" +
	"\n" +
	"\x1elabreports/v1/labreports.proto\x12\rlabreports.v1\"@\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\"I\n" +
	"\x15CreateProfileResponse\x120\n" +
	"\aprofile\x18\x01 \x01(\v2\x16.labreports.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"J\n" +
	"\x14ListProfilesResponse\x122\n" +
	"\bprofiles\x18\x01 \x03(\v2\x16.labreports.v1.ProfileR\bprofiles\"\x81\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"_\n" +
	"\x14ProcessReportRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x14\n" +
	"\x05async\x18\x03 \x01(\bR\x05async\"\x87\x02\n" +
	"\x15ProcessReportResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x19\n" +
	"\bpanel_id\x18\x02 \x01(\tR\apanelId\x12\x17\n" +
	"\afile_id\x18\x03 \x01(\tR\x06fileId\x12'\n" +
	"\x0fbiomarker_count\x18\x04 \x01(\x05R\x0ebiomarkerCount\x12+\n" +
	"\x11extraction_method\x18\x05 \x01(\tR\x10extractionMethod\x124\n" +
	"\apatient\x18\x06 \x01(\v2\x1a.labreports.v1.PatientInfoR\apatient\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"h\n" +
	"\x11ListPanelsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"B\n" +
	"\x12ListPanelsResponse\x12,\n" +
	"\x06panels\x18\x01 \x03(\v2\x14.labreports.v1.PanelR\x06panels\",\n" +
	"\x0fGetPanelRequest\x12\x19\n" +
	"\bpanel_id\x18\x01 \x01(\tR\apanelId\"x\n" +
	"\x10GetPanelResponse\x12*\n" +
	"\x05panel\x18\x01 \x01(\v2\x14.labreports.v1.PanelR\x05panel\x128\n" +
	"\n" +
	"biomarkers\x18\x02 \x03(\v2\x18.labreports.v1.BiomarkerR\n" +
	"biomarkers\"\x85\x01\n" +
	"\x13ExportPanelsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x12\x19\n" +
	"\bout_path\x18\x04 \x01(\tR\aoutPath\"G\n" +
	"\x14ExportPanelsResponse\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount\"\xe9\x02\n" +
	"\x05Panel\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1a\n" +
	"\bprovider\x18\x04 \x01(\tR\bprovider\x12'\n" +
	"\x0fcollection_date\x18\x05 \x01(\tR\x0ecollectionDate\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1f\n" +
	"\vsource_path\x18\a \x01(\tR\n" +
	"sourcePath\x12+\n" +
	"\x11extraction_method\x18\b \x01(\tR\x10extractionMethod\x124\n" +
	"\apatient\x18\t \x01(\v2\x1a.labreports.v1.PatientInfoR\apatient\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xae\x02\n" +
	"\tBiomarker\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bpanel_id\x18\x02 \x01(\tR\apanelId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x04 \x01(\x01R\x05value\x12\x17\n" +
	"\x04unit\x18\x05 \x01(\tH\x00R\x04unit\x88\x01\x01\x12(\n" +
	"\rreference_min\x18\x06 \x01(\x01H\x01R\freferenceMin\x88\x01\x01\x12(\n" +
	"\rreference_max\x18\a \x01(\x01H\x02R\freferenceMax\x88\x01\x01\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategoryB\a\n" +
	"\x05_unitB\x10\n" +
	"\x0e_reference_minB\x10\n" +
	"\x0e_reference_max\"\x85\x01\n" +
	"\vPatientInfo\x12\x1d\n" +
	"\n" +
	"first_name\x18\x01 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x02 \x01(\tR\blastName\x12\"\n" +
	"\rdate_of_birth\x18\x03 \x01(\tR\vdateOfBirth\x12\x16\n" +
	"\x06gender\x18\x04 \x01(\tR\x06gender2\xc6\x01\n" +
	"\x0fProfilesService\x12Z\n" +
	"\rCreateProfile\x12#.labreports.v1.CreateProfileRequest\x1a$.labreports.v1.CreateProfileResponse\x12W\n" +
	"\fListProfiles\x12\".labreports.v1.ListProfilesRequest\x1a#.labreports.v1.ListProfilesResponse2\xe4\x02\n" +
	"\rPanelsService\x12Z\n" +
	"\rProcessReport\x12#.labreports.v1.ProcessReportRequest\x1a$.labreports.v1.ProcessReportResponse\x12Q\n" +
	"\n" +
	"ListPanels\x12 .labreports.v1.ListPanelsRequest\x1a!.labreports.v1.ListPanelsResponse\x12K\n" +
	"\bGetPanel\x12\x1e.labreports.v1.GetPanelRequest\x1a\x1f.labreports.v1.GetPanelResponse\x12W\n" +
	"\fExportPanels\x12\".labreports.v1.ExportPanelsRequest\x1a#.labreports.v1.ExportPanelsResponseBNZLgithub.com/DurgeshS-25/labpanel-tracker/gen/proto/labreports/v1;labreportsv1b\x06proto3"

var (
	file_labreports_v1_labreports_proto_rawDescOnce sync.Once
	file_labreports_v1_labreports_proto_rawDescData []byte
)

func file_labreports_v1_labreports_proto_rawDescGZIP() []byte {
	file_labreports_v1_labreports_proto_rawDescOnce.Do(func() {
		file_labreports_v1_labreports_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_labreports_v1_labreports_proto_rawDesc), len(file_labreports_v1_labreports_proto_rawDesc)))
	})
	return file_labreports_v1_labreports_proto_rawDescData
}

var file_labreports_v1_labreports_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_labreports_v1_labreports_proto_goTypes = []any{
	(*CreateProfileRequest)(nil),  // 0: labreports.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil), // 1: labreports.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),   // 2: labreports.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),  // 3: labreports.v1.ListProfilesResponse
	(*Profile)(nil),               // 4: labreports.v1.Profile
	(*ProcessReportRequest)(nil),  // 5: labreports.v1.ProcessReportRequest
	(*ProcessReportResponse)(nil), // 6: labreports.v1.ProcessReportResponse
	(*ListPanelsRequest)(nil),     // 7: labreports.v1.ListPanelsRequest
	(*ListPanelsResponse)(nil),    // 8: labreports.v1.ListPanelsResponse
	(*GetPanelRequest)(nil),       // 9: labreports.v1.GetPanelRequest
	(*GetPanelResponse)(nil),      // 10: labreports.v1.GetPanelResponse
	(*ExportPanelsRequest)(nil),   // 11: labreports.v1.ExportPanelsRequest
	(*ExportPanelsResponse)(nil),  // 12: labreports.v1.ExportPanelsResponse
	(*Panel)(nil),                 // 13: labreports.v1.Panel
	(*Biomarker)(nil),             // 14: labreports.v1.Biomarker
	(*PatientInfo)(nil),           // 15: labreports.v1.PatientInfo
}
var file_labreports_v1_labreports_proto_depIdxs = []int32{
	4,  // 0: labreports.v1.CreateProfileResponse.profile:type_name -> labreports.v1.Profile
	4,  // 1: labreports.v1.ListProfilesResponse.profiles:type_name -> labreports.v1.Profile
	15, // 2: labreports.v1.ProcessReportResponse.patient:type_name -> labreports.v1.PatientInfo
	13, // 3: labreports.v1.ListPanelsResponse.panels:type_name -> labreports.v1.Panel
	13, // 4: labreports.v1.GetPanelResponse.panel:type_name -> labreports.v1.Panel
	14, // 5: labreports.v1.GetPanelResponse.biomarkers:type_name -> labreports.v1.Biomarker
	15, // 6: labreports.v1.Panel.patient:type_name -> labreports.v1.PatientInfo
	0,  // 7: labreports.v1.ProfilesService.CreateProfile:input_type -> labreports.v1.CreateProfileRequest
	2,  // 8: labreports.v1.ProfilesService.ListProfiles:input_type -> labreports.v1.ListProfilesRequest
	5,  // 9: labreports.v1.PanelsService.ProcessReport:input_type -> labreports.v1.ProcessReportRequest
	7,  // 10: labreports.v1.PanelsService.ListPanels:input_type -> labreports.v1.ListPanelsRequest
	9,  // 11: labreports.v1.PanelsService.GetPanel:input_type -> labreports.v1.GetPanelRequest
	11, // 12: labreports.v1.PanelsService.ExportPanels:input_type -> labreports.v1.ExportPanelsRequest
	1,  // 13: labreports.v1.ProfilesService.CreateProfile:output_type -> labreports.v1.CreateProfileResponse
	3,  // 14: labreports.v1.ProfilesService.ListProfiles:output_type -> labreports.v1.ListProfilesResponse
	6,  // 15: labreports.v1.PanelsService.ProcessReport:output_type -> labreports.v1.ProcessReportResponse
	8,  // 16: labreports.v1.PanelsService.ListPanels:output_type -> labreports.v1.ListPanelsResponse
	10, // 17: labreports.v1.PanelsService.GetPanel:output_type -> labreports.v1.GetPanelResponse
	12, // 18: labreports.v1.PanelsService.ExportPanels:output_type -> labreports.v1.ExportPanelsResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_labreports_v1_labreports_proto_init() }
func file_labreports_v1_labreports_proto_init() {
	if File_labreports_v1_labreports_proto != nil {
		return
	}
	file_labreports_v1_labreports_proto_msgTypes[14].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_labreports_v1_labreports_proto_rawDesc), len(file_labreports_v1_labreports_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_labreports_v1_labreports_proto_goTypes,
		DependencyIndexes: file_labreports_v1_labreports_proto_depIdxs,
		MessageInfos:      file_labreports_v1_labreports_proto_msgTypes,
	}.Build()
	File_labreports_v1_labreports_proto = out.File
	file_labreports_v1_labreports_proto_goTypes = nil
	file_labreports_v1_labreports_proto_depIdxs = nil
}
