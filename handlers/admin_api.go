package handlers

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/showroom-motors/site/b2util"
	"github.com/showroom-motors/site/brand"
	"github.com/showroom-motors/site/car"
	"github.com/showroom-motors/site/homepage"
	"github.com/showroom-motors/site/inquiry"
	"github.com/showroom-motors/site/local"
	"github.com/showroom-motors/site/metrics"
	"github.com/showroom-motors/site/password"
	"github.com/showroom-motors/site/ui"
	"github.com/showroom-motors/site/user"
	"github.com/showroom-motors/site/vector"
)

// adminDone answers a successful admin change. Dashboard forms get a notice
// and a refresh; API clients get the JSON envelope.
func adminDone(c *fiber.Ctx, status int, message string, data interface{}) error {
	if isHTMX(c) {
		c.Set("HX-Refresh", "true")
		return render(c, ui.SuccessMessage(message, ""))
	}
	return c.Status(status).JSON(apiResponse{Status: "success", Data: data, Message: message})
}

type idResponse struct {
	ID int `json:"id"`
}

// uploadFormImage stores the file in field under prefix. uploaded is false
// when the request carries no file.
func uploadFormImage(c *fiber.Ctx, field, prefix string) (key string, uploaded bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", true, fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
	}
	defer f.Close()

	key, err = b2util.UploadImage(prefix, f)
	metrics.ImageUpload(err)
	if err != nil {
		log.Printf("[admin] Upload of %s failed: %v", fh.Filename, err)
		if errors.Is(err, b2util.ErrNotConfigured) {
			return "", true, fiber.NewError(fiber.StatusServiceUnavailable, "Image storage is not configured")
		}
		return "", true, fiber.NewError(fiber.StatusUnprocessableEntity, "Image could not be processed")
	}
	return key, true, nil
}

func deleteStoredImage(key string) {
	if err := b2util.DeleteImage(key); err != nil && !errors.Is(err, b2util.ErrNotConfigured) {
		log.Printf("[admin] Could not delete image %s: %v", key, err)
	}
}

// ---- Brands ----

type brandRequest struct {
	NameEN string `json:"name_en" form:"name_en"`
	NameAR string `json:"name_ar" form:"name_ar"`
	Slug   string `json:"slug" form:"slug"`
}

func HandleCreateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid brand")
	}
	logo, _, err := uploadFormImage(c, "logo", "brands")
	if err != nil {
		return err
	}
	id, err := brand.Create(brand.Brand{
		NameEN:  strings.TrimSpace(req.NameEN),
		NameAR:  strings.TrimSpace(req.NameAR),
		Slug:    strings.TrimSpace(req.Slug),
		LogoKey: logo,
	})
	if err != nil {
		deleteStoredImage(logo)
		return badRequest(err)
	}
	log.Printf("[admin] Brand %d created", id)
	return adminDone(c, fiber.StatusCreated, "Brand created", idResponse{ID: id})
}

func HandleUpdateBrand(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	b, ok := brand.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Brand not found")
	}
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid brand")
	}
	if name := strings.TrimSpace(req.NameEN); name != "" {
		b.NameEN = name
	}
	b.NameAR = strings.TrimSpace(req.NameAR)
	b.Slug = strings.TrimSpace(req.Slug)

	logo, uploaded, err := uploadFormImage(c, "logo", "brands")
	if err != nil {
		return err
	}
	old := b.LogoKey
	if uploaded {
		b.LogoKey = logo
	}
	if err := brand.Update(b); err != nil {
		return err
	}
	if uploaded && old != "" {
		deleteStoredImage(old)
	}
	return adminDone(c, fiber.StatusOK, "Brand saved", b)
}

func HandleDeleteBrand(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	b, ok := brand.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Brand not found")
	}
	if err := brand.Delete(id); err != nil {
		if errors.Is(err, brand.ErrInUse) {
			return fiber.NewError(fiber.StatusConflict, "Brand still has cars")
		}
		return err
	}
	deleteStoredImage(b.LogoKey)
	return adminDone(c, fiber.StatusOK, "Brand deleted", nil)
}

// ---- Cars ----

type carRequest struct {
	BrandID       int      `json:"brand_id" form:"brand_id"`
	Model         string   `json:"model" form:"model"`
	NameEN        string   `json:"name_en" form:"name_en"`
	NameAR        string   `json:"name_ar" form:"name_ar"`
	Slug          string   `json:"slug" form:"slug"`
	Year          int      `json:"year" form:"year"`
	Price         float64  `json:"price" form:"price"`
	Transmission  string   `json:"transmission" form:"transmission"`
	Seats         int      `json:"seats" form:"seats"`
	DescriptionEN string   `json:"description_en" form:"description_en"`
	DescriptionAR string   `json:"description_ar" form:"description_ar"`
	FuelTypes     []string `json:"fuel_types" form:"fuel_types"`
	Featured      bool     `json:"featured" form:"featured"`
}

func (r carRequest) toCar(id int) (car.Car, error) {
	if r.Transmission != "" && !slices.Contains(car.Transmissions, r.Transmission) {
		return car.Car{}, fmt.Errorf("unknown transmission %q", r.Transmission)
	}
	for _, f := range r.FuelTypes {
		if !slices.Contains(car.FuelTypes, strings.ToLower(strings.TrimSpace(f))) {
			return car.Car{}, fmt.Errorf("unknown fuel type %q", f)
		}
	}
	return car.Car{
		ID:            id,
		BrandID:       r.BrandID,
		Model:         strings.TrimSpace(r.Model),
		NameEN:        strings.TrimSpace(r.NameEN),
		NameAR:        strings.TrimSpace(r.NameAR),
		Slug:          strings.TrimSpace(r.Slug),
		Year:          r.Year,
		Price:         r.Price,
		Transmission:  r.Transmission,
		Seats:         r.Seats,
		DescriptionEN: strings.TrimSpace(r.DescriptionEN),
		DescriptionAR: strings.TrimSpace(r.DescriptionAR),
		FuelTypes:     r.FuelTypes,
		Featured:      r.Featured,
	}, nil
}

func parseCar(c *fiber.Ctx, id int) (car.Car, error) {
	var req carRequest
	if err := c.BodyParser(&req); err != nil {
		return car.Car{}, fiber.NewError(fiber.StatusBadRequest, "Invalid car")
	}
	parsed, err := req.toCar(id)
	if err != nil {
		return car.Car{}, badRequest(err)
	}
	if err := parsed.Validate(); err != nil {
		return car.Car{}, badRequest(err)
	}
	if _, ok := brand.Get(parsed.BrandID); !ok {
		return car.Car{}, fiber.NewError(fiber.StatusBadRequest, "Unknown brand")
	}
	return parsed, nil
}

// queueEmbedding schedules a car for (re)embedding when the vector services
// are configured.
func queueEmbedding(id int) {
	vector.ForgetSimilar(id)
	if !vector.Enabled() {
		return
	}
	if c, ok := car.Get(id); ok {
		vector.GetProcessor().QueueCar(c)
	}
}

func HandleCreateCar(c *fiber.Ctx) error {
	parsed, err := parseCar(c, 0)
	if err != nil {
		return err
	}
	id, err := car.Create(parsed)
	if err != nil {
		return err
	}
	log.Printf("[admin] Car %d created: %s", id, parsed.NameEN)
	queueEmbedding(id)
	return adminDone(c, fiber.StatusCreated, "Car created", idResponse{ID: id})
}

func HandleUpdateCar(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := car.Get(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	parsed, err := parseCar(c, id)
	if err != nil {
		return err
	}
	if err := car.Update(parsed); err != nil {
		return err
	}
	queueEmbedding(id)
	return adminDone(c, fiber.StatusOK, "Car saved", idResponse{ID: id})
}

func HandleDeleteCar(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := car.Get(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	images, err := car.GetImages(id)
	if err != nil {
		return err
	}
	if err := car.Delete(id); err != nil {
		return err
	}
	for _, img := range images {
		deleteStoredImage(img.Key)
	}

	vector.ForgetSimilar(id)
	if vector.Enabled() {
		if err := vector.DeleteCarEmbedding(c.UserContext(), id); err != nil {
			log.Printf("[admin] Could not delete embedding of car %d: %v", id, err)
		}
	}
	log.Printf("[admin] Car %d deleted", id)
	return adminDone(c, fiber.StatusOK, "Car deleted", nil)
}

// ---- Variations ----

type variationRequest struct {
	NameEN     string  `json:"name_en" form:"name_en"`
	NameAR     string  `json:"name_ar" form:"name_ar"`
	Price      float64 `json:"price" form:"price"`
	Engine     string  `json:"engine" form:"engine"`
	Horsepower int     `json:"horsepower" form:"horsepower"`
}

func (r variationRequest) apply(v *car.Variation) error {
	if r.Price < 0 || r.Horsepower < 0 {
		return fmt.Errorf("price and horsepower cannot be negative")
	}
	v.NameEN = strings.TrimSpace(r.NameEN)
	v.NameAR = strings.TrimSpace(r.NameAR)
	v.Price = r.Price
	v.Engine = strings.TrimSpace(r.Engine)
	v.Horsepower = r.Horsepower
	return nil
}

func HandleCreateVariation(c *fiber.Ctx) error {
	carID, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := car.Get(carID); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	var req variationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid variation")
	}
	v := car.Variation{CarID: carID}
	if err := req.apply(&v); err != nil {
		return badRequest(err)
	}
	id, err := car.CreateVariation(v)
	if err != nil {
		return badRequest(err)
	}
	return adminDone(c, fiber.StatusCreated, "Variation added", idResponse{ID: id})
}

func HandleUpdateVariation(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	v, ok := car.GetVariation(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Variation not found")
	}
	var req variationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid variation")
	}
	if err := req.apply(&v); err != nil {
		return badRequest(err)
	}
	if v.NameEN == "" {
		return fiber.NewError(fiber.StatusBadRequest, "variation name is required")
	}
	if err := car.UpdateVariation(v); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Variation saved", v)
}

func HandleDeleteVariation(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if err := car.DeleteVariation(id); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Variation deleted", nil)
}

// ---- Images ----

func HandleUploadCarImage(c *fiber.Ctx) error {
	carID, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if _, ok := car.Get(carID); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	key, uploaded, err := uploadFormImage(c, "image", fmt.Sprintf("cars/%d", carID))
	if err != nil {
		return err
	}
	if !uploaded {
		return fiber.NewError(fiber.StatusBadRequest, "Image is required")
	}
	id, err := car.AddImage(carID, key)
	if err != nil {
		deleteStoredImage(key)
		return err
	}
	return adminDone(c, fiber.StatusCreated, "Image uploaded", idResponse{ID: id})
}

// HandleMoveCarImage shifts an image one place in its car's gallery.
func HandleMoveCarImage(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	delta, err := ParseQueryInt(c, "delta", 0)
	if err != nil {
		return err
	}
	if delta != -1 && delta != 1 {
		return fiber.NewError(fiber.StatusBadRequest, "delta must be -1 or 1")
	}
	img, ok := car.GetImage(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}
	images, err := car.GetImages(img.CarID)
	if err != nil {
		return err
	}
	order := moveID(imageIDs(images), id, delta)
	if err := car.ReorderImages(img.CarID, order); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Image moved", order)
}

func imageIDs(images []car.Image) []int {
	ids := make([]int, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}
	return ids
}

// moveID swaps id with its neighbour in direction delta. Moving past either
// end leaves the order unchanged.
func moveID(ids []int, id, delta int) []int {
	out := slices.Clone(ids)
	i := slices.Index(out, id)
	j := i + delta
	if i < 0 || j < 0 || j >= len(out) {
		return out
	}
	out[i], out[j] = out[j], out[i]
	return out
}

func HandleDeleteCarImage(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	img, ok := car.GetImage(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}
	if err := car.DeleteImage(id); err != nil {
		return err
	}
	deleteStoredImage(img.Key)
	return adminDone(c, fiber.StatusOK, "Image deleted", nil)
}

// ---- Carousel and logos ----

type slideRequest struct {
	TitleEN    string `json:"title_en" form:"title_en"`
	TitleAR    string `json:"title_ar" form:"title_ar"`
	SubtitleEN string `json:"subtitle_en" form:"subtitle_en"`
	SubtitleAR string `json:"subtitle_ar" form:"subtitle_ar"`
	LinkURL    string `json:"link_url" form:"link_url"`
	Active     bool   `json:"active" form:"active"`
}

func (r slideRequest) apply(s *homepage.Slide) {
	s.TitleEN = strings.TrimSpace(r.TitleEN)
	s.TitleAR = strings.TrimSpace(r.TitleAR)
	s.SubtitleEN = strings.TrimSpace(r.SubtitleEN)
	s.SubtitleAR = strings.TrimSpace(r.SubtitleAR)
	s.LinkURL = strings.TrimSpace(r.LinkURL)
	s.Active = r.Active
}

func HandleCreateSlide(c *fiber.Ctx) error {
	var req slideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid slide")
	}
	key, uploaded, err := uploadFormImage(c, "image", "carousel")
	if err != nil {
		return err
	}
	if !uploaded {
		return fiber.NewError(fiber.StatusBadRequest, "Slide image is required")
	}
	s := homepage.Slide{ImageKey: key}
	req.apply(&s)
	id, err := homepage.CreateSlide(s)
	if err != nil {
		deleteStoredImage(key)
		return badRequest(err)
	}
	return adminDone(c, fiber.StatusCreated, "Slide added", idResponse{ID: id})
}

func HandleUpdateSlide(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	s, ok := homepage.GetSlide(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Slide not found")
	}
	var req slideRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid slide")
	}
	req.apply(&s)
	key, uploaded, err := uploadFormImage(c, "image", "carousel")
	if err != nil {
		return err
	}
	old := s.ImageKey
	if uploaded {
		s.ImageKey = key
	}
	if err := homepage.UpdateSlide(s); err != nil {
		return err
	}
	if uploaded {
		deleteStoredImage(old)
	}
	return adminDone(c, fiber.StatusOK, "Slide saved", s)
}

func HandleDeleteSlide(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	s, ok := homepage.GetSlide(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Slide not found")
	}
	if err := homepage.DeleteSlide(id); err != nil {
		return err
	}
	deleteStoredImage(s.ImageKey)
	return adminDone(c, fiber.StatusOK, "Slide deleted", nil)
}

// moveHandler shifts a carousel slide or logo one place.
func moveHandler(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseIntParam(c, "id")
		if err != nil {
			return err
		}
		delta, err := ParseQueryInt(c, "delta", 0)
		if err != nil {
			return err
		}
		if err := homepage.Move(table, id, delta); err != nil {
			return badRequest(err)
		}
		return adminDone(c, fiber.StatusOK, "Order saved", nil)
	}
}

var (
	HandleMoveSlide = moveHandler(homepage.TableSlide)
	HandleMoveLogo  = moveHandler(homepage.TableLogo)
)

type logoRequest struct {
	Name    string `json:"name" form:"name"`
	LinkURL string `json:"link_url" form:"link_url"`
}

func HandleCreateLogo(c *fiber.Ctx) error {
	var req logoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid logo")
	}
	key, uploaded, err := uploadFormImage(c, "image", "logos")
	if err != nil {
		return err
	}
	if !uploaded {
		return fiber.NewError(fiber.StatusBadRequest, "Logo image is required")
	}
	id, err := homepage.CreateLogo(homepage.Logo{
		Name:     strings.TrimSpace(req.Name),
		ImageKey: key,
		LinkURL:  strings.TrimSpace(req.LinkURL),
	})
	if err != nil {
		deleteStoredImage(key)
		return badRequest(err)
	}
	return adminDone(c, fiber.StatusCreated, "Logo added", idResponse{ID: id})
}

func HandleUpdateLogo(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	l, ok := homepage.GetLogo(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Logo not found")
	}
	var req logoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid logo")
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		l.Name = name
	}
	l.LinkURL = strings.TrimSpace(req.LinkURL)
	key, uploaded, err := uploadFormImage(c, "image", "logos")
	if err != nil {
		return err
	}
	old := l.ImageKey
	if uploaded {
		l.ImageKey = key
	}
	if err := homepage.UpdateLogo(l); err != nil {
		return err
	}
	if uploaded {
		deleteStoredImage(old)
	}
	return adminDone(c, fiber.StatusOK, "Logo saved", l)
}

func HandleDeleteLogo(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	l, ok := homepage.GetLogo(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Logo not found")
	}
	if err := homepage.DeleteLogo(id); err != nil {
		return err
	}
	deleteStoredImage(l.ImageKey)
	return adminDone(c, fiber.StatusOK, "Logo deleted", nil)
}

// ---- Inquiries ----

func HandleAPIInquiries(c *fiber.Ctx) error {
	inquiries, err := inquiry.GetAll()
	if err != nil {
		return err
	}
	if inquiries == nil {
		inquiries = []inquiry.Inquiry{}
	}
	return jsonSuccess(c, inquiries)
}

func HandleDeleteInquiry(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if err := inquiry.Delete(id); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Inquiry deleted", nil)
}

// ---- Admin accounts ----

type userResponse struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Status user.UserStatus `json:"status"`
}

func HandleAPIUsers(c *fiber.Ctx) error {
	users, err := user.GetAllUsers()
	if err != nil {
		return err
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, Name: u.Name, Status: u.Status()})
	}
	return jsonSuccess(c, out)
}

type userRequest struct {
	Name      string `json:"name" form:"name"`
	Password  string `json:"password" form:"password"`
	Password2 string `json:"password2" form:"password2"`
}

func HandleCreateUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid account")
	}
	name := strings.TrimSpace(req.Name)
	if err := password.ValidateAdminName(name); err != nil {
		return badRequest(err)
	}
	if err := password.ValidatePasswordConfirmation(req.Password, req.Password2); err != nil {
		return badRequest(err)
	}
	if err := password.ValidatePasswordStrength(req.Password); err != nil {
		return badRequest(err)
	}
	if _, err := user.GetUserByName(name); err == nil {
		return fiber.NewError(fiber.StatusConflict, "Name is already taken")
	}

	hash, salt, err := password.HashPassword(req.Password)
	if err != nil {
		return err
	}
	id, err := user.CreateUser(name, hash, salt, password.Algo)
	if err != nil {
		return err
	}
	log.Printf("[admin] Admin %d (%s) created by %s", id, name, local.GetAdminName(c))
	return adminDone(c, fiber.StatusCreated, "Admin created", idResponse{ID: id})
}

type passwordChangeRequest struct {
	Current string `json:"current_password" form:"current_password"`
	New     string `json:"new_password" form:"new_password"`
	Confirm string `json:"new_password2" form:"new_password2"`
}

// HandleChangePassword replaces the signed-in admin's password.
func HandleChangePassword(c *fiber.Ctx) error {
	var req passwordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}
	if err := password.ValidatePasswordChange(req.Current, req.New, req.Confirm); err != nil {
		return badRequest(err)
	}

	id := local.GetAdminID(c)
	u, err := user.GetUser(id)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
	}
	if !password.VerifyPassword(req.Current, u.PasswordHash, u.PasswordSalt) {
		return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, salt, err := password.HashPassword(req.New)
	if err != nil {
		return err
	}
	if _, err := user.UpdateUserPassword(id, hash, salt, password.Algo); err != nil {
		return err
	}
	log.Printf("[admin] Admin %d (%s) changed their password", id, u.Name)
	return adminDone(c, fiber.StatusOK, "Password updated", nil)
}

func HandleArchiveUser(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if id == local.GetAdminID(c) {
		return fiber.NewError(fiber.StatusBadRequest, "You cannot archive your own account")
	}
	if err := user.ArchiveUser(id); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Admin archived", nil)
}

func HandleRestoreUser(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if err := user.RestoreUser(id); err != nil {
		return err
	}
	return adminDone(c, fiber.StatusOK, "Admin restored", nil)
}

// ---- Caches and vectors ----

func HandleAPICaches(c *fiber.Ctx) error {
	stats := make(map[string]map[string]interface{})
	for _, s := range cacheStats() {
		stats[s.Name] = s.Stats
	}
	return jsonSuccess(c, stats)
}

func HandleClearCache(c *fiber.Ctx) error {
	switch name := c.Params("name"); name {
	case "brands":
		brand.ClearCache()
	case "b2":
		b2util.ClearCache()
	case "similar":
		vector.ClearSimilarCache()
	default:
		return fiber.NewError(fiber.StatusNotFound, "Unknown cache: "+name)
	}
	return adminDone(c, fiber.StatusOK, "Cache cleared", nil)
}

func HandleQueueVectors(c *fiber.Ctx) error {
	if !vector.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Vector search is not configured")
	}
	n := vector.GetProcessor().QueueCarsWithoutVectors()
	return adminDone(c, fiber.StatusOK, fmt.Sprintf("Queued %d cars", n), map[string]int{"queued": n})
}
