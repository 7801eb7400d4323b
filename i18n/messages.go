package i18n

var english = map[string]string{
	"site.name":           "Showroom Motors",
	"nav.home":            "Home",
	"nav.cars":            "Cars",
	"nav.wishlist":        "Wishlist",
	"nav.admin":           "Dashboard",
	"nav.language":        "العربية",
	"home.featured":       "Featured cars",
	"home.partners":       "Our brands",
	"home.browse":         "Browse all cars",
	"cars.title":          "Our cars",
	"cars.loading":        "Loading cars…",
	"cars.error":          "We could not load the cars right now.",
	"cars.none":           "No cars match your filters.",
	"cars.results":        "cars found",
	"cars.from":           "From",
	"cars.retry":          "Try again",
	"brand.cars":          "Models",
	"filter.title":        "Filters",
	"filter.price":        "Price",
	"filter.min":          "Min",
	"filter.max":          "Max",
	"filter.brand":        "Brand",
	"filter.year":         "Year",
	"filter.any_year":     "Any year",
	"filter.fuel":         "Fuel type",
	"filter.transmission": "Transmission",
	"filter.seats":        "Seats",
	"filter.apply":        "Apply",
	"filter.clear":        "Clear Filters",
	"sort.label":          "Sort by",
	"sort.relevance":      "Relevance",
	"sort.price-asc":      "Price: low to high",
	"sort.price-desc":     "Price: high to low",
	"sort.year-desc":      "Newest first",
	"page.prev":           "Previous",
	"page.next":           "Next",
	"fuel.petrol":         "Petrol",
	"fuel.diesel":         "Diesel",
	"fuel.hybrid":         "Hybrid",
	"fuel.electric":       "Electric",
	"transmission.auto":   "Automatic",
	"transmission.manual": "Manual",
	"car.year":            "Year",
	"car.seats":           "Seats",
	"car.variations":      "Variations",
	"car.engine":          "Engine",
	"car.horsepower":      "hp",
	"car.similar":         "You may also like",
	"wishlist.title":      "Your wishlist",
	"wishlist.empty":      "You have not saved any cars yet.",
	"wishlist.add":        "Save",
	"wishlist.remove":     "Saved",
	"inquiry.title":       "Ask about this car",
	"inquiry.name":        "Your name",
	"inquiry.phone":       "Phone number",
	"inquiry.message":     "Message",
	"inquiry.send":        "Send",
	"inquiry.thanks":      "Thank you. Our team will call you shortly.",
	"inquiry.invalid":     "Please enter your name and a valid phone number.",
	"inquiry.failed":      "Your request could not be sent. Please try again.",
	"error.title":         "Something went wrong",
	"error.not_found":     "Page not found",
	"error.back":          "Back to home",
}

var arabic = map[string]string{
	"site.name":           "معرض السيارات",
	"nav.home":            "الرئيسية",
	"nav.cars":            "السيارات",
	"nav.wishlist":        "المفضلة",
	"nav.admin":           "لوحة التحكم",
	"nav.language":        "English",
	"home.featured":       "سيارات مميزة",
	"home.partners":       "علاماتنا التجارية",
	"home.browse":         "تصفح جميع السيارات",
	"cars.title":          "سياراتنا",
	"cars.loading":        "جارٍ تحميل السيارات…",
	"cars.error":          "تعذر تحميل السيارات حالياً.",
	"cars.none":           "لا توجد سيارات تطابق الفلاتر.",
	"cars.results":        "سيارة",
	"cars.from":           "ابتداءً من",
	"cars.retry":          "حاول مرة أخرى",
	"brand.cars":          "الطرازات",
	"filter.title":        "الفلاتر",
	"filter.price":        "السعر",
	"filter.min":          "الأدنى",
	"filter.max":          "الأعلى",
	"filter.brand":        "العلامة التجارية",
	"filter.year":         "السنة",
	"filter.any_year":     "أي سنة",
	"filter.fuel":         "نوع الوقود",
	"filter.transmission": "ناقل الحركة",
	"filter.seats":        "المقاعد",
	"filter.apply":        "تطبيق",
	"filter.clear":        "مسح الفلاتر",
	"sort.label":          "ترتيب حسب",
	"sort.relevance":      "الأكثر صلة",
	"sort.price-asc":      "السعر: من الأقل للأعلى",
	"sort.price-desc":     "السعر: من الأعلى للأقل",
	"sort.year-desc":      "الأحدث أولاً",
	"page.prev":           "السابق",
	"page.next":           "التالي",
	"fuel.petrol":         "بنزين",
	"fuel.diesel":         "ديزل",
	"fuel.hybrid":         "هجين",
	"fuel.electric":       "كهربائي",
	"transmission.auto":   "أوتوماتيك",
	"transmission.manual": "يدوي",
	"car.year":            "السنة",
	"car.seats":           "المقاعد",
	"car.variations":      "الفئات",
	"car.engine":          "المحرك",
	"car.horsepower":      "حصان",
	"car.similar":         "قد يعجبك أيضاً",
	"wishlist.title":      "قائمة المفضلة",
	"wishlist.empty":      "لم تقم بحفظ أي سيارة بعد.",
	"wishlist.add":        "حفظ",
	"wishlist.remove":     "محفوظة",
	"inquiry.title":       "استفسر عن هذه السيارة",
	"inquiry.name":        "الاسم",
	"inquiry.phone":       "رقم الهاتف",
	"inquiry.message":     "الرسالة",
	"inquiry.send":        "إرسال",
	"inquiry.thanks":      "شكراً لك. سيتواصل معك فريقنا قريباً.",
	"inquiry.invalid":     "يرجى إدخال الاسم ورقم هاتف صحيح.",
	"inquiry.failed":      "تعذر إرسال طلبك. يرجى المحاولة مرة أخرى.",
	"error.title":         "حدث خطأ ما",
	"error.not_found":     "الصفحة غير موجودة",
	"error.back":          "العودة للرئيسية",
}
