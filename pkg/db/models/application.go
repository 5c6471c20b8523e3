package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonName splits a candidate's full name as captured on the paper form.
type PersonName struct {
	First  string `json:"first,omitempty"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last,omitempty"`
}

func (n PersonName) Value() (driver.Value, error) { return jsonValue(n) }
func (n *PersonName) Scan(src any) error          { return jsonScan(src, n) }

type FamilyMember struct {
	Name         string     `json:"name"`
	Relationship string     `json:"relationship"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Occupation   string     `json:"occupation,omitempty"`
}

type FamilyMembers []FamilyMember

func (m FamilyMembers) Value() (driver.Value, error) { return jsonValue(m) }
func (m *FamilyMembers) Scan(src any) error          { return jsonScan(src, m) }

type Dependent struct {
	Name               string     `json:"name"`
	Relationship       string     `json:"relationship"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	ReasonOfDependency string     `json:"reasonOfDependency,omitempty"`
}

type Dependents []Dependent

func (d Dependents) Value() (driver.Value, error) { return jsonValue(d) }
func (d *Dependents) Scan(src any) error          { return jsonScan(src, d) }

type EducationEntry struct {
	InstituteName    string   `json:"instituteName"`
	InstituteAddress string   `json:"instituteAddress,omitempty"`
	University       string   `json:"university,omitempty"`
	YearFrom         *int     `json:"yearFrom,omitempty"`
	YearTo           *int     `json:"yearTo,omitempty"`
	DegreeOrExam     string   `json:"degreeOrExam,omitempty"`
	MainSubjects     string   `json:"mainSubjects,omitempty"`
	Division         string   `json:"division,omitempty"`
	MarksPercent     *float64 `json:"marksPercent,omitempty"`
}

type EducationHistory []EducationEntry

func (e EducationHistory) Value() (driver.Value, error) { return jsonValue(e) }
func (e *EducationHistory) Scan(src any) error          { return jsonScan(src, e) }

type LanguageSkill struct {
	Language string `json:"language"`
	Speak    bool   `json:"speak"`
	Read     bool   `json:"read"`
	Write    bool   `json:"write"`
}

type LanguageSkills []LanguageSkill

func (l LanguageSkills) Value() (driver.Value, error) { return jsonValue(l) }
func (l *LanguageSkills) Scan(src any) error          { return jsonScan(src, l) }

type PastEmployment struct {
	EmployerName     string     `json:"employerName"`
	EmployerAddress  string     `json:"employerAddress,omitempty"`
	Designation      string     `json:"designation,omitempty"`
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	SalaryOnJoining  *float64   `json:"salaryOnJoining,omitempty"`
	SalaryOnLeaving  *float64   `json:"salaryOnLeaving,omitempty"`
	ReasonForLeaving string     `json:"reasonForLeaving,omitempty"`
}

type PastEmployments []PastEmployment

func (p PastEmployments) Value() (driver.Value, error) { return jsonValue(p) }
func (p *PastEmployments) Scan(src any) error          { return jsonScan(src, p) }

type Promotion struct {
	PromotionFrom   string     `json:"promotionFrom,omitempty"`
	PromotionAs     string     `json:"promotionAs,omitempty"`
	DateOfPromotion *time.Time `json:"dateOfPromotion,omitempty"`
}

type Promotions []Promotion

func (p Promotions) Value() (driver.Value, error) { return jsonValue(p) }
func (p *Promotions) Scan(src any) error          { return jsonScan(src, p) }

type TrainingCourse struct {
	Subject  string `json:"subject,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type TrainingCourses []TrainingCourse

func (t TrainingCourses) Value() (driver.Value, error) { return jsonValue(t) }
func (t *TrainingCourses) Scan(src any) error          { return jsonScan(src, t) }

type Reference struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	CompanyName string `json:"companyName,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type References []Reference

func (r References) Value() (driver.Value, error) { return jsonValue(r) }
func (r *References) Scan(src any) error          { return jsonScan(src, r) }

// Emoluments is the present compensation breakdown block of the form.
type Emoluments struct {
	Remuneration struct {
		Salary           *float64 `json:"salary,omitempty"`
		DA               *float64 `json:"da,omitempty"`
		PersonalPay      *float64 `json:"personalPay,omitempty"`
		SpecialAllowance *float64 `json:"specialAllowance,omitempty"`
		AnyOther         *float64 `json:"anyOther,omitempty"`
	} `json:"remuneration,omitempty"`
	Residence struct {
		FreeFurnished        bool     `json:"freeFurnished,omitempty"`
		RentSubsidyAllowance *float64 `json:"rentSubsidyAllowance,omitempty"`
		RentPaid             *float64 `json:"rentPaid,omitempty"`
		OwnsHouse            bool     `json:"ownsHouse,omitempty"`
		Telephone            *float64 `json:"telephone,omitempty"`
		FurnishingSoft       *float64 `json:"furnishingSoft,omitempty"`
		FurnishingHard       *float64 `json:"furnishingHard,omitempty"`
	} `json:"residence,omitempty"`
	Conveyance struct {
		CompanyCar                 bool     `json:"companyCar,omitempty"`
		ConveyanceAllowanceSubsidy *float64 `json:"conveyanceAllowanceSubsidy,omitempty"`
		OwnsVehicle                bool     `json:"ownsVehicle,omitempty"`
		VehicleDetails             string   `json:"vehicleDetails,omitempty"`
		VehicleMaintenance         *float64 `json:"vehicleMaintenance,omitempty"`
		Driver                     *float64 `json:"driver,omitempty"`
	} `json:"conveyance,omitempty"`
	OtherPerquisites struct {
		Entertainment       *float64 `json:"entertainment,omitempty"`
		ServantGuard        *float64 `json:"servantGuard,omitempty"`
		Utilities           *float64 `json:"utilities,omitempty"`
		NewspapersMagazines *float64 `json:"newspapersMagazines,omitempty"`
		AnyOther            *float64 `json:"anyOther,omitempty"`
	} `json:"otherPerquisites,omitempty"`
	RetirementBenefits struct {
		ContributoryPF *float64 `json:"contributoryPF,omitempty"`
		Gratuity       *float64 `json:"gratuity,omitempty"`
		Pension        *float64 `json:"pension,omitempty"`
	} `json:"retirementBenefits,omitempty"`
	OtherBenefits struct {
		MedicalSubsidy *float64 `json:"medicalSubsidy,omitempty"`
		LTA            *float64 `json:"lta,omitempty"`
		Bonus          *float64 `json:"bonus,omitempty"`
		Loans          *float64 `json:"loans,omitempty"`
		AnyOther       *float64 `json:"anyOther,omitempty"`
	} `json:"otherBenefits,omitempty"`
	TotalCostToCompany      *float64 `json:"totalCostToCompany,omitempty"`
	OtherRemunerationDetail string   `json:"otherRemunerationDetails,omitempty"`
}

func (e Emoluments) Value() (driver.Value, error) { return jsonValue(e) }
func (e *Emoluments) Scan(src any) error          { return jsonScan(src, e) }

// OfficeUse captures the interview and decision trail filled in by HR.
type OfficeUse struct {
	PreliminaryInterviewNotes      string     `json:"preliminaryInterviewNotes,omitempty"`
	PreliminaryInterviewDate       *time.Time `json:"preliminaryInterviewDate,omitempty"`
	PreliminaryInterviewSignatures string     `json:"preliminaryInterviewSignatures,omitempty"`
	FinalInterviewNotes            string     `json:"finalInterviewNotes,omitempty"`
	FinalInterviewDate             *time.Time `json:"finalInterviewDate,omitempty"`
	FinalInterviewSignatures       string     `json:"finalInterviewSignatures,omitempty"`
	Decision                       string     `json:"decision,omitempty"`
	DecisionDate                   *time.Time `json:"decisionDate,omitempty"`
	DecisionSignatures             string     `json:"decisionSignatures,omitempty"`
	ActionTaken                    string     `json:"actionTaken,omitempty"`
	ActionDate                     *time.Time `json:"actionDate,omitempty"`
	ActionSignatures               string     `json:"actionSignatures,omitempty"`
}

func (o OfficeUse) Value() (driver.Value, error) { return jsonValue(o) }
func (o *OfficeUse) Scan(src any) error          { return jsonScan(src, o) }

// Application is the personal-particulars form a candidate submits. Everything
// except the owner and the post applied for is optional.
type Application struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`

	PlantLocation  *string `gorm:"column:plant_location"`
	ReferenceNo    *string `gorm:"column:reference_no"`
	PostAppliedFor string  `gorm:"column:post_applied_for;not null"`

	FullName *PersonName `gorm:"column:full_name;type:jsonb"`

	PresentAddress          *string `gorm:"column:present_address"`
	PresentPhoneResidence   *string `gorm:"column:present_phone_residence"`
	Mobile                  *string `gorm:"column:mobile"`
	Email                   *string `gorm:"column:email"`
	PermanentAddress        *string `gorm:"column:permanent_address"`
	PermanentPhoneResidence *string `gorm:"column:permanent_phone_residence"`
	EmergencyAddress        *string `gorm:"column:emergency_address"`
	EmergencyPhone          *string `gorm:"column:emergency_phone"`

	FatherOrHusbandName            *string `gorm:"column:father_or_husband_name"`
	FatherOrHusbandAddress         *string `gorm:"column:father_or_husband_address"`
	FatherOrHusbandOccupation      *string `gorm:"column:father_or_husband_occupation"`
	FatherOrHusbandDesignation     *string `gorm:"column:father_or_husband_designation"`
	FatherOrHusbandOfficialAddress *string `gorm:"column:father_or_husband_official_address"`
	FatherOrHusbandLastOccupation  *string `gorm:"column:father_or_husband_last_occupation"`

	DateOfBirth   *time.Time `gorm:"column:date_of_birth"`
	AgeYears      *int       `gorm:"column:age_years"`
	PlaceOfBirth  *string    `gorm:"column:place_of_birth"`
	PlaceOfOrigin *string    `gorm:"column:place_of_origin"`
	MaritalStatus *string    `gorm:"column:marital_status"`
	HeightCm      *float64   `gorm:"column:height_cm"`
	WeightKg      *float64   `gorm:"column:weight_kg"`

	FamilyMembers FamilyMembers `gorm:"column:family_members;type:jsonb"`
	Dependents    Dependents    `gorm:"column:dependents;type:jsonb"`

	OtherIncomeSource         *string  `gorm:"column:other_income_source"`
	OtherIncomeAmount         *float64 `gorm:"column:other_income_amount"`
	CourtProceedingsDetails   *string  `gorm:"column:court_proceedings_details"`
	SeriousIllnessDetails     *string  `gorm:"column:serious_illness_details"`
	PhysicalDisabilityDetails *string  `gorm:"column:physical_disability_details"`

	EducationHistory EducationHistory `gorm:"column:education_history;type:jsonb"`
	LanguagesKnown   LanguageSkills   `gorm:"column:languages_known;type:jsonb"`

	LiteraryCulturalArts *string `gorm:"column:literary_cultural_arts"`
	SocialActivities     *string `gorm:"column:social_activities"`
	HobbiesInterests     *string `gorm:"column:hobbies_interests"`

	PastEmployment PastEmployments `gorm:"column:past_employment;type:jsonb"`

	PresentEmployerName    *string    `gorm:"column:present_employer_name"`
	PresentEmployerAddress *string    `gorm:"column:present_employer_address"`
	DateOfAppointment      *time.Time `gorm:"column:date_of_appointment"`
	DesignationOnJoining   *string    `gorm:"column:designation_on_joining"`
	PresentDesignation     *string    `gorm:"column:present_designation"`

	Promotions Promotions `gorm:"column:promotions;type:jsonb"`

	PresentPositionInHierarchy  *string `gorm:"column:present_position_in_hierarchy"`
	ResponsibilitiesPresentRole *string `gorm:"column:responsibilities_present_role"`
	ImportantAspectsOfExp       *string `gorm:"column:important_aspects_of_experience"`

	ReasonForSeekingNewAppointment    *string `gorm:"column:reason_for_seeking_new_appointment"`
	AppearedForTestOrInterviewEarlier *bool   `gorm:"column:appeared_for_test_or_interview_earlier"`
	AppearedForTestOrInterviewDetail  *string `gorm:"column:appeared_for_test_or_interview_details"`
	PresentEmployerAwareOfApplication *bool   `gorm:"column:present_employer_aware_of_application"`
	RelatedToAnyDirector              *bool   `gorm:"column:related_to_any_director"`
	DirectorRelationshipDetails       *string `gorm:"column:director_relationship_details"`
	NoticePeriodToJoin                *string `gorm:"column:notice_period_to_join"`
	AllowRetainNameOnFile             *bool   `gorm:"column:allow_retain_name_on_file"`

	ProfessionalTrainingCourses TrainingCourses `gorm:"column:professional_training_courses;type:jsonb"`

	AdditionalInformation *string `gorm:"column:additional_information"`

	Emoluments *Emoluments `gorm:"column:emoluments;type:jsonb"`
	References References  `gorm:"column:references;type:jsonb"`

	DeclarationAccepted *bool      `gorm:"column:declaration_accepted"`
	DeclarationPlace    *string    `gorm:"column:declaration_place"`
	DeclarationDate     *time.Time `gorm:"column:declaration_date"`

	OfficeUse *OfficeUse `gorm:"column:office_use;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Application) TableName() string {
	return "applications"
}
