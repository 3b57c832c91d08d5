package dto

import (
	"time"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// DoctorResponse is the public shape of a practitioner profile. Image fields
// mirror the stored handle: cloudinaryId/cloudinaryUrl are empty when the
// photo is served from local fallback storage.
type DoctorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Specialty     string    `json:"specialty"`
	Status        string    `json:"status"`
	Image         string    `json:"image"`
	CloudinaryID  string    `json:"cloudinaryId"`
	CloudinaryURL string    `json:"cloudinaryUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewDoctorResponse maps a domain doctor.
func NewDoctorResponse(doctor *domain.Doctor) DoctorResponse {
	resp := DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Status:    string(doctor.Status),
		Image:     doctor.Photo.URL,
		CreatedAt: doctor.CreatedAt,
	}
	if doctor.Photo.Remote() {
		resp.CloudinaryID = doctor.Photo.PublicID
		resp.CloudinaryURL = doctor.Photo.URL
	}
	return resp
}

// ServiceRequest payload for service create/update.
type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ServiceResponse is the public shape of a clinic service.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewServiceResponse maps a domain service.
func NewServiceResponse(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Icon:        svc.Icon,
		CreatedAt:   svc.CreatedAt,
	}
}

// BannerRequest payload for banner create/update.
type BannerRequest struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	RegistrationLink string `json:"registrationLink"`
}

// BannerResponse is the public shape of a banner.
type BannerResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	RegistrationLink string    `json:"registrationLink"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewBannerResponse maps a domain banner.
func NewBannerResponse(banner *domain.Banner) BannerResponse {
	return BannerResponse{
		ID:               banner.ID,
		Title:            banner.Title,
		Date:             banner.Date,
		Time:             banner.Time,
		RegistrationLink: banner.RegistrationLink,
		CreatedAt:        banner.CreatedAt,
	}
}

// GalleryImageResponse is the public shape of a gallery photo.
type GalleryImageResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	CloudinaryID  string    `json:"cloudinaryId"`
	CloudinaryURL string    `json:"cloudinaryUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewGalleryImageResponse maps a domain gallery image.
func NewGalleryImageResponse(image *domain.GalleryImage) GalleryImageResponse {
	resp := GalleryImageResponse{
		ID:          image.ID,
		Title:       image.Title,
		Description: image.Description,
		URL:         image.Photo.URL,
		CreatedAt:   image.CreatedAt,
	}
	if image.Photo.Remote() {
		resp.CloudinaryID = image.Photo.PublicID
		resp.CloudinaryURL = image.Photo.URL
	}
	return resp
}

// PartnerResponse is the public shape of a partner organization.
type PartnerResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Website            string    `json:"website"`
	Logo               string    `json:"logo"`
	LogoPublicID       string    `json:"logoPublicId"`
	OwnerPhoto         string    `json:"ownerPhoto"`
	OwnerPhotoPublicID string    `json:"ownerPhotoPublicId"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewPartnerResponse maps a domain partner.
func NewPartnerResponse(partner *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:                 partner.ID,
		Name:               partner.Name,
		Website:            partner.Website,
		Logo:               partner.Logo.URL,
		LogoPublicID:       partner.Logo.PublicID,
		OwnerPhoto:         partner.OwnerPhoto.URL,
		OwnerPhotoPublicID: partner.OwnerPhoto.PublicID,
		CreatedAt:          partner.CreatedAt,
	}
}

// StatisticsRequest payload for partial statistics updates. Nil fields are
// left unchanged.
type StatisticsRequest struct {
	PatientsTreated *int `json:"patientsTreated"`
	TestReports     *int `json:"testReports"`
	HoursSupport    *int `json:"hoursSupport"`
	RecoveryRate    *int `json:"recoveryRate"`
}

// StatisticsResponse is the public shape of the statistics singleton.
type StatisticsResponse struct {
	PatientsTreated int       `json:"patientsTreated"`
	TestReports     int       `json:"testReports"`
	HoursSupport    int       `json:"hoursSupport"`
	RecoveryRate    int       `json:"recoveryRate"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewStatisticsResponse maps the statistics singleton.
func NewStatisticsResponse(stats *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		PatientsTreated: stats.PatientsTreated,
		TestReports:     stats.TestReports,
		HoursSupport:    stats.HoursSupport,
		RecoveryRate:    stats.RecoveryRate,
		UpdatedAt:       stats.UpdatedAt,
	}
}

// AboutResponse is the public shape of the about page.
type AboutResponse struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Mission      string     `json:"mission"`
	Vision       string     `json:"vision"`
	JourneyImage string     `json:"journeyImage"`
	Statistics   AboutStats `json:"statistics"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AboutStats carries the headline counts shown on the about page.
type AboutStats struct {
	Doctors   int `json:"doctors"`
	Therapies int `json:"therapies"`
}

// NewAboutResponse maps the about singleton.
func NewAboutResponse(about *domain.About) AboutResponse {
	return AboutResponse{
		Title:        about.Title,
		Content:      about.Content,
		Mission:      about.Mission,
		Vision:       about.Vision,
		JourneyImage: about.JourneyImage.URL,
		Statistics: AboutStats{
			Doctors:   about.DoctorCount,
			Therapies: about.TherapyCount,
		},
		UpdatedAt: about.UpdatedAt,
	}
}
