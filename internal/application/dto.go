package application

import (
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/google/uuid"
)

// FormDocument mirrors the personal-particulars form. Every field is a
// pointer so a partial update can tell "absent" from "set to zero": apply
// only touches the columns the caller actually sent.
type FormDocument struct {
	PlantLocation  *string `json:"plantLocation,omitempty"`
	ReferenceNo    *string `json:"referenceNo,omitempty"`
	PostAppliedFor *string `json:"postAppliedFor,omitempty"`

	FullName *models.PersonName `json:"fullName,omitempty"`

	PresentAddress          *string `json:"presentAddress,omitempty"`
	PresentPhoneResidence   *string `json:"presentPhoneResidence,omitempty"`
	Mobile                  *string `json:"mobile,omitempty"`
	Email                   *string `json:"email,omitempty"`
	PermanentAddress        *string `json:"permanentAddress,omitempty"`
	PermanentPhoneResidence *string `json:"permanentPhoneResidence,omitempty"`
	EmergencyAddress        *string `json:"emergencyAddress,omitempty"`
	EmergencyPhone          *string `json:"emergencyPhone,omitempty"`

	FatherOrHusbandName            *string `json:"fatherOrHusbandName,omitempty"`
	FatherOrHusbandAddress         *string `json:"fatherOrHusbandAddress,omitempty"`
	FatherOrHusbandOccupation      *string `json:"fatherOrHusbandOccupation,omitempty"`
	FatherOrHusbandDesignation     *string `json:"fatherOrHusbandDesignation,omitempty"`
	FatherOrHusbandOfficialAddress *string `json:"fatherOrHusbandOfficialAddress,omitempty"`
	FatherOrHusbandLastOccupation  *string `json:"fatherOrHusbandLastOccupation,omitempty"`

	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	AgeYears      *int       `json:"ageYears,omitempty"`
	PlaceOfBirth  *string    `json:"placeOfBirth,omitempty"`
	PlaceOfOrigin *string    `json:"placeOfOrigin,omitempty"`
	MaritalStatus *string    `json:"maritalStatus,omitempty"`
	HeightCm      *float64   `json:"heightCm,omitempty"`
	WeightKg      *float64   `json:"weightKg,omitempty"`

	FamilyMembers *models.FamilyMembers `json:"familyMembers,omitempty"`
	Dependents    *models.Dependents    `json:"dependents,omitempty"`

	OtherIncomeSource         *string  `json:"otherIncomeSource,omitempty"`
	OtherIncomeAmount         *float64 `json:"otherIncomeAmount,omitempty"`
	CourtProceedingsDetails   *string  `json:"courtProceedingsDetails,omitempty"`
	SeriousIllnessDetails     *string  `json:"seriousIllnessDetails,omitempty"`
	PhysicalDisabilityDetails *string  `json:"physicalDisabilityDetails,omitempty"`

	EducationHistory *models.EducationHistory `json:"educationHistory,omitempty"`
	LanguagesKnown   *models.LanguageSkills   `json:"languagesKnown,omitempty"`

	LiteraryCulturalArts *string `json:"literaryCulturalArts,omitempty"`
	SocialActivities     *string `json:"socialActivities,omitempty"`
	HobbiesInterests     *string `json:"hobbiesInterests,omitempty"`

	PastEmployment *models.PastEmployments `json:"pastEmployment,omitempty"`

	PresentEmployerName    *string    `json:"presentEmployerName,omitempty"`
	PresentEmployerAddress *string    `json:"presentEmployerAddress,omitempty"`
	DateOfAppointment      *time.Time `json:"dateOfAppointment,omitempty"`
	DesignationOnJoining   *string    `json:"designationOnJoining,omitempty"`
	PresentDesignation     *string    `json:"presentDesignation,omitempty"`

	Promotions *models.Promotions `json:"promotions,omitempty"`

	PresentPositionInHierarchy  *string `json:"presentPositionInHierarchy,omitempty"`
	ResponsibilitiesPresentRole *string `json:"responsibilitiesPresentRole,omitempty"`
	ImportantAspectsOfExp       *string `json:"importantAspectsOfExperience,omitempty"`

	ReasonForSeekingNewAppointment    *string `json:"reasonForSeekingNewAppointment,omitempty"`
	AppearedForTestOrInterviewEarlier *bool   `json:"appearedForTestOrInterviewEarlier,omitempty"`
	AppearedForTestOrInterviewDetail  *string `json:"appearedForTestOrInterviewDetails,omitempty"`
	PresentEmployerAwareOfApplication *bool   `json:"presentEmployerAwareOfApplication,omitempty"`
	RelatedToAnyDirector              *bool   `json:"relatedToAnyDirector,omitempty"`
	DirectorRelationshipDetails       *string `json:"directorRelationshipDetails,omitempty"`
	NoticePeriodToJoin                *string `json:"noticePeriodToJoin,omitempty"`
	AllowRetainNameOnFile             *bool   `json:"allowRetainNameOnFile,omitempty"`

	ProfessionalTrainingCourses *models.TrainingCourses `json:"professionalTrainingCourses,omitempty"`

	AdditionalInformation *string `json:"additionalInformation,omitempty"`

	Emoluments *models.Emoluments `json:"emoluments,omitempty"`
	References *models.References `json:"references,omitempty"`

	DeclarationAccepted *bool      `json:"declarationAccepted,omitempty"`
	DeclarationPlace    *string    `json:"declarationPlace,omitempty"`
	DeclarationDate     *time.Time `json:"declarationDate,omitempty"`

	OfficeUse *models.OfficeUse `json:"officeUse,omitempty"`
}

// FormResponse is the stored form plus its identity and bookkeeping columns.
type FormResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	FormDocument
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// apply copies every field the caller supplied onto the record. Fields left
// nil in the document keep whatever the record already holds.
func (d FormDocument) apply(m *models.Application) {
	setString := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	setTime := func(dst **time.Time, src *time.Time) {
		if src != nil {
			*dst = src
		}
	}
	setBool := func(dst **bool, src *bool) {
		if src != nil {
			*dst = src
		}
	}
	setFloat := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}

	setString(&m.PlantLocation, d.PlantLocation)
	setString(&m.ReferenceNo, d.ReferenceNo)
	if d.PostAppliedFor != nil {
		m.PostAppliedFor = *d.PostAppliedFor
	}
	if d.FullName != nil {
		m.FullName = d.FullName
	}

	setString(&m.PresentAddress, d.PresentAddress)
	setString(&m.PresentPhoneResidence, d.PresentPhoneResidence)
	setString(&m.Mobile, d.Mobile)
	setString(&m.Email, d.Email)
	setString(&m.PermanentAddress, d.PermanentAddress)
	setString(&m.PermanentPhoneResidence, d.PermanentPhoneResidence)
	setString(&m.EmergencyAddress, d.EmergencyAddress)
	setString(&m.EmergencyPhone, d.EmergencyPhone)

	setString(&m.FatherOrHusbandName, d.FatherOrHusbandName)
	setString(&m.FatherOrHusbandAddress, d.FatherOrHusbandAddress)
	setString(&m.FatherOrHusbandOccupation, d.FatherOrHusbandOccupation)
	setString(&m.FatherOrHusbandDesignation, d.FatherOrHusbandDesignation)
	setString(&m.FatherOrHusbandOfficialAddress, d.FatherOrHusbandOfficialAddress)
	setString(&m.FatherOrHusbandLastOccupation, d.FatherOrHusbandLastOccupation)

	setTime(&m.DateOfBirth, d.DateOfBirth)
	if d.AgeYears != nil {
		m.AgeYears = d.AgeYears
	}
	setString(&m.PlaceOfBirth, d.PlaceOfBirth)
	setString(&m.PlaceOfOrigin, d.PlaceOfOrigin)
	setString(&m.MaritalStatus, d.MaritalStatus)
	setFloat(&m.HeightCm, d.HeightCm)
	setFloat(&m.WeightKg, d.WeightKg)

	if d.FamilyMembers != nil {
		m.FamilyMembers = *d.FamilyMembers
	}
	if d.Dependents != nil {
		m.Dependents = *d.Dependents
	}

	setString(&m.OtherIncomeSource, d.OtherIncomeSource)
	setFloat(&m.OtherIncomeAmount, d.OtherIncomeAmount)
	setString(&m.CourtProceedingsDetails, d.CourtProceedingsDetails)
	setString(&m.SeriousIllnessDetails, d.SeriousIllnessDetails)
	setString(&m.PhysicalDisabilityDetails, d.PhysicalDisabilityDetails)

	if d.EducationHistory != nil {
		m.EducationHistory = *d.EducationHistory
	}
	if d.LanguagesKnown != nil {
		m.LanguagesKnown = *d.LanguagesKnown
	}

	setString(&m.LiteraryCulturalArts, d.LiteraryCulturalArts)
	setString(&m.SocialActivities, d.SocialActivities)
	setString(&m.HobbiesInterests, d.HobbiesInterests)

	if d.PastEmployment != nil {
		m.PastEmployment = *d.PastEmployment
	}

	setString(&m.PresentEmployerName, d.PresentEmployerName)
	setString(&m.PresentEmployerAddress, d.PresentEmployerAddress)
	setTime(&m.DateOfAppointment, d.DateOfAppointment)
	setString(&m.DesignationOnJoining, d.DesignationOnJoining)
	setString(&m.PresentDesignation, d.PresentDesignation)

	if d.Promotions != nil {
		m.Promotions = *d.Promotions
	}

	setString(&m.PresentPositionInHierarchy, d.PresentPositionInHierarchy)
	setString(&m.ResponsibilitiesPresentRole, d.ResponsibilitiesPresentRole)
	setString(&m.ImportantAspectsOfExp, d.ImportantAspectsOfExp)

	setString(&m.ReasonForSeekingNewAppointment, d.ReasonForSeekingNewAppointment)
	setBool(&m.AppearedForTestOrInterviewEarlier, d.AppearedForTestOrInterviewEarlier)
	setString(&m.AppearedForTestOrInterviewDetail, d.AppearedForTestOrInterviewDetail)
	setBool(&m.PresentEmployerAwareOfApplication, d.PresentEmployerAwareOfApplication)
	setBool(&m.RelatedToAnyDirector, d.RelatedToAnyDirector)
	setString(&m.DirectorRelationshipDetails, d.DirectorRelationshipDetails)
	setString(&m.NoticePeriodToJoin, d.NoticePeriodToJoin)
	setBool(&m.AllowRetainNameOnFile, d.AllowRetainNameOnFile)

	if d.ProfessionalTrainingCourses != nil {
		m.ProfessionalTrainingCourses = *d.ProfessionalTrainingCourses
	}

	setString(&m.AdditionalInformation, d.AdditionalInformation)

	if d.Emoluments != nil {
		m.Emoluments = d.Emoluments
	}
	if d.References != nil {
		m.References = *d.References
	}

	setBool(&m.DeclarationAccepted, d.DeclarationAccepted)
	setString(&m.DeclarationPlace, d.DeclarationPlace)
	setTime(&m.DeclarationDate, d.DeclarationDate)

	if d.OfficeUse != nil {
		m.OfficeUse = d.OfficeUse
	}
}

func documentFromModel(m *models.Application) FormDocument {
	doc := FormDocument{
		PlantLocation:  m.PlantLocation,
		ReferenceNo:    m.ReferenceNo,
		FullName:       m.FullName,
		PostAppliedFor: &m.PostAppliedFor,

		PresentAddress:          m.PresentAddress,
		PresentPhoneResidence:   m.PresentPhoneResidence,
		Mobile:                  m.Mobile,
		Email:                   m.Email,
		PermanentAddress:        m.PermanentAddress,
		PermanentPhoneResidence: m.PermanentPhoneResidence,
		EmergencyAddress:        m.EmergencyAddress,
		EmergencyPhone:          m.EmergencyPhone,

		FatherOrHusbandName:            m.FatherOrHusbandName,
		FatherOrHusbandAddress:         m.FatherOrHusbandAddress,
		FatherOrHusbandOccupation:      m.FatherOrHusbandOccupation,
		FatherOrHusbandDesignation:     m.FatherOrHusbandDesignation,
		FatherOrHusbandOfficialAddress: m.FatherOrHusbandOfficialAddress,
		FatherOrHusbandLastOccupation:  m.FatherOrHusbandLastOccupation,

		DateOfBirth:   m.DateOfBirth,
		AgeYears:      m.AgeYears,
		PlaceOfBirth:  m.PlaceOfBirth,
		PlaceOfOrigin: m.PlaceOfOrigin,
		MaritalStatus: m.MaritalStatus,
		HeightCm:      m.HeightCm,
		WeightKg:      m.WeightKg,

		OtherIncomeSource:         m.OtherIncomeSource,
		OtherIncomeAmount:         m.OtherIncomeAmount,
		CourtProceedingsDetails:   m.CourtProceedingsDetails,
		SeriousIllnessDetails:     m.SeriousIllnessDetails,
		PhysicalDisabilityDetails: m.PhysicalDisabilityDetails,

		LiteraryCulturalArts: m.LiteraryCulturalArts,
		SocialActivities:     m.SocialActivities,
		HobbiesInterests:     m.HobbiesInterests,

		PresentEmployerName:    m.PresentEmployerName,
		PresentEmployerAddress: m.PresentEmployerAddress,
		DateOfAppointment:      m.DateOfAppointment,
		DesignationOnJoining:   m.DesignationOnJoining,
		PresentDesignation:     m.PresentDesignation,

		PresentPositionInHierarchy:  m.PresentPositionInHierarchy,
		ResponsibilitiesPresentRole: m.ResponsibilitiesPresentRole,
		ImportantAspectsOfExp:       m.ImportantAspectsOfExp,

		ReasonForSeekingNewAppointment:    m.ReasonForSeekingNewAppointment,
		AppearedForTestOrInterviewEarlier: m.AppearedForTestOrInterviewEarlier,
		AppearedForTestOrInterviewDetail:  m.AppearedForTestOrInterviewDetail,
		PresentEmployerAwareOfApplication: m.PresentEmployerAwareOfApplication,
		RelatedToAnyDirector:              m.RelatedToAnyDirector,
		DirectorRelationshipDetails:       m.DirectorRelationshipDetails,
		NoticePeriodToJoin:                m.NoticePeriodToJoin,
		AllowRetainNameOnFile:             m.AllowRetainNameOnFile,

		AdditionalInformation: m.AdditionalInformation,

		Emoluments: m.Emoluments,

		DeclarationAccepted: m.DeclarationAccepted,
		DeclarationPlace:    m.DeclarationPlace,
		DeclarationDate:     m.DeclarationDate,

		OfficeUse: m.OfficeUse,
	}
	if len(m.FamilyMembers) > 0 {
		doc.FamilyMembers = &m.FamilyMembers
	}
	if len(m.Dependents) > 0 {
		doc.Dependents = &m.Dependents
	}
	if len(m.EducationHistory) > 0 {
		doc.EducationHistory = &m.EducationHistory
	}
	if len(m.LanguagesKnown) > 0 {
		doc.LanguagesKnown = &m.LanguagesKnown
	}
	if len(m.PastEmployment) > 0 {
		doc.PastEmployment = &m.PastEmployment
	}
	if len(m.Promotions) > 0 {
		doc.Promotions = &m.Promotions
	}
	if len(m.ProfessionalTrainingCourses) > 0 {
		doc.ProfessionalTrainingCourses = &m.ProfessionalTrainingCourses
	}
	if len(m.References) > 0 {
		doc.References = &m.References
	}
	return doc
}

func responseFromModel(m *models.Application) *FormResponse {
	return &FormResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		FormDocument: documentFromModel(m),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
