package memstore

import (
	"time"

	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
)

// CurrentUserID é o cliente de demonstração dono da sessão do app.
const CurrentUserID = "current_user"

func ptrFloat(v float64) *float64 { return &v }

func ptrTime(t time.Time) *time.Time { return &t }

// seed popula o dataset de demonstração. Datas de agenda e financeiro são
// relativas ao relógio para o painel nunca nascer vazio.
func (s *Store) seed() {
	loc := timezone.Location(timezone.DefaultTimezone)
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	s.shops = []models.Shop{
		{
			ID:           "s1",
			OwnerUserID:  "u1",
			Name:         "Northside Studio",
			BrandSlug:    "northside-studio",
			Description:  "Premium barbershop serving the community since 2010. Experience the art of grooming.",
			SupportPhone: "+1-416-555-0100",
			Timezone:     "America/Toronto",
			LogoURL:      "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?w=400",
			CreatedAt:    time.Date(2010, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "s2",
			OwnerUserID:  "u2",
			Name:         "Downtown Fades",
			BrandSlug:    "downtown-fades",
			Description:  "Modern barbershop in the heart of the city. Walk-ins and appointments welcome.",
			SupportPhone: "+1-416-555-0200",
			Timezone:     "America/Toronto",
			LogoURL:      "https://images.unsplash.com/photo-1622287162716-f311baa1a2b8?w=400",
			CreatedAt:    time.Date(2018, 3, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	s.locations = []models.Location{
		{
			ID:           "l1",
			ShopID:       "s1",
			AddressLine1: "123 Queen Street West",
			City:         "Toronto",
			Region:       "Ontario",
			Country:      "CA",
			PostalCode:   "M5H 2M9",
			Lat:          43.6532,
			Lng:          -79.3832,
		},
		{
			ID:           "l2",
			ShopID:       "s2",
			AddressLine1: "456 King Street East",
			City:         "Toronto",
			Region:       "Ontario",
			Country:      "CA",
			PostalCode:   "M5A 1L1",
			Lat:          43.6520,
			Lng:          -79.3700,
		},
	}

	s.barbers = []models.BarberWithDistance{
		{
			Barber: models.Barber{
				BarberID:        "b1",
				Bio:             "Master barber specializing in precision fades and classic cuts. 15+ years transforming looks and building confidence.",
				Specialties:     []string{"Skin Fade", "Taper Fade", "Beard Sculpting", "Hot Towel Shave", "Kids Cuts"},
				Languages:       []string{"English", "Spanish"},
				YearsExperience: 15,
				InstagramHandle: "@marcuscuts",
				PortfolioCoverURL: "https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=800",
				PortfolioImages: []string{
					"https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=800",
					"https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=800",
					"https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=800",
				},
				VerificationStatus: models.VerificationVerified,
				RatingAvg:          4.9,
				RatingCount:        347,
				User: models.User{
					ID:          "u1",
					DisplayName: "Marcus Johnson",
					Email:       "marcus@barberhub.com",
					AvatarURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
					RoleFlags:   models.RoleFlags{IsBarber: true, IsOwner: true},
				},
			},
			Distance:          ptrFloat(0.8),
			NextAvailableSlot: ptrTime(today.Add(14 * time.Hour)),
		},
		{
			Barber: models.Barber{
				BarberID:        "b2",
				Bio:             "Creating signature styles for the modern gentleman. Expert in textured cuts, lineups, and beard artistry. Walk-ins welcome.",
				Specialties:     []string{"Textured Cuts", "Lineup", "Beard Design", "Color Services", "Hair Tattoos"},
				Languages:       []string{"English", "French"},
				YearsExperience: 8,
				InstagramHandle: "@jaylinesbarber",
				PortfolioCoverURL: "https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=800",
				PortfolioImages: []string{
					"https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=800",
					"https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=800",
				},
				VerificationStatus: models.VerificationVerified,
				RatingAvg:          4.8,
				RatingCount:        256,
				User: models.User{
					ID:          "u2",
					DisplayName: "Jay Martinez",
					Email:       "jay@barberhub.com",
					AvatarURL:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
					RoleFlags:   models.RoleFlags{IsBarber: true},
				},
			},
			Distance:          ptrFloat(1.2),
			NextAvailableSlot: ptrTime(today.Add(15*time.Hour + 30*time.Minute)),
		},
		{
			Barber: models.Barber{
				BarberID:        "b3",
				Bio:             "Traditional barbering meets contemporary style. Passionate about classic techniques and modern trends.",
				Specialties:     []string{"Classic Cuts", "Pompadour", "Undercut", "Straight Razor", "Scalp Treatments"},
				Languages:       []string{"English", "Italian"},
				YearsExperience: 12,
				InstagramHandle: "@deandrocuts",
				PortfolioCoverURL: "https://images.unsplash.com/photo-1633681926022-84c23e8cb2d6?w=800",
				PortfolioImages: []string{
					"https://images.unsplash.com/photo-1633681926022-84c23e8cb2d6?w=800",
					"https://images.unsplash.com/photo-1632781297772-1d68f375d878?w=800",
				},
				VerificationStatus: models.VerificationVerified,
				RatingAvg:          4.95,
				RatingCount:        412,
				User: models.User{
					ID:          "u3",
					DisplayName: "DeAndre Williams",
					Email:       "deandre@barberhub.com",
					AvatarURL:   "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400",
					RoleFlags:   models.RoleFlags{IsBarber: true},
				},
			},
			Distance:          ptrFloat(2.1),
			NextAvailableSlot: ptrTime(today.Add(13 * time.Hour)),
		},
		{
			Barber: models.Barber{
				BarberID:        "b4",
				Bio:             "Award-winning barber with a passion for creative styling. Specializing in fashion-forward cuts and color transformations.",
				Specialties:     []string{"Fashion Cuts", "Color Expert", "Curly Hair", "Loc Maintenance", "Perms"},
				Languages:       []string{"English", "Portuguese"},
				YearsExperience: 10,
				InstagramHandle: "@alexstyles",
				PortfolioCoverURL: "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=800",
				PortfolioImages: []string{
					"https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=800",
					"https://images.unsplash.com/photo-1599351431202-1e0f0137899a?w=800",
				},
				VerificationStatus: models.VerificationVerified,
				RatingAvg:          4.85,
				RatingCount:        289,
				User: models.User{
					ID:          "u4",
					DisplayName: "Alex Santos",
					Email:       "alex@barberhub.com",
					AvatarURL:   "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400",
					RoleFlags:   models.RoleFlags{IsBarber: true},
				},
			},
			Distance:          ptrFloat(3.5),
			NextAvailableSlot: ptrTime(today.Add(16 * time.Hour)),
		},
	}

	// contexto de loja/endereço intercalado, como na tela de descoberta
	for i := range s.barbers {
		shop := s.shops[i%len(s.shops)]
		location := s.locations[i%len(s.locations)]
		s.barbers[i].Shop = &shop
		s.barbers[i].Location = &location
	}

	s.services = []models.Service{
		{ID: "svc1", ShopID: "s1", Name: "Signature Fade", Description: "Our most popular cut. Precision fade with styling.", DurationMinutes: 45, PriceCents: 4500, Currency: "CAD", Active: true},
		{ID: "svc2", ShopID: "s1", Name: "Beard Trim & Shape", Description: "Professional beard grooming with hot towel treatment.", DurationMinutes: 30, PriceCents: 3000, Currency: "CAD", Active: true},
		{ID: "svc3", ShopID: "s1", Name: "Hot Towel Shave", Description: "Traditional straight razor shave with premium products.", DurationMinutes: 40, PriceCents: 5500, Currency: "CAD", Active: true},
		{ID: "svc4", ShopID: "s1", Name: "Kids Cut (12 & under)", Description: "Professional haircut for children in a fun environment.", DurationMinutes: 30, PriceCents: 3500, Currency: "CAD", Active: true},
		{ID: "svc5", ShopID: "s1", Name: "Hair Tattoo Design", Description: "Custom hair design or pattern.", DurationMinutes: 20, PriceCents: 2000, Currency: "CAD", IsAddon: true, Active: true},
		{ID: "svc6", ShopID: "s1", Name: "Scalp Treatment", Description: "Revitalizing scalp massage and treatment.", DurationMinutes: 15, PriceCents: 1500, Currency: "CAD", IsAddon: true, Active: true},
	}

	s.reviews = []models.Review{
		{
			ID: "r1", AppointmentID: "a1", ClientUserID: "c1", BarberUserID: "b1", Rating: 5,
			Text:      "Best fade I've ever gotten! Marcus really takes his time and pays attention to every detail.",
			CreatedAt: now.AddDate(0, 0, -7),
			Client: &models.User{
				ID: "c1", DisplayName: "James Wilson",
				AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
				RoleFlags: models.RoleFlags{IsClient: true},
			},
		},
		{
			ID: "r2", AppointmentID: "a2", ClientUserID: "c2", BarberUserID: "b1", Rating: 5,
			Text:      "Marcus is a true professional. He listens to what you want and delivers every time.",
			CreatedAt: now.AddDate(0, 0, -9),
			Client: &models.User{
				ID: "c2", DisplayName: "David Chen",
				AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200",
				RoleFlags: models.RoleFlags{IsClient: true},
			},
		},
		{
			ID: "r3", AppointmentID: "a4", ClientUserID: "c4", BarberUserID: "b1", Rating: 4,
			Text:      "Great cut and service. Only small wait time but totally worth it.",
			CreatedAt: now.AddDate(0, 0, -16),
			Client: &models.User{
				ID: "c4", DisplayName: "Robert Taylor",
				RoleFlags: models.RoleFlags{IsClient: true},
			},
		},
	}

	barber1 := s.barbers[0]
	barber2 := s.barbers[1]

	s.appointments = []models.Appointment{
		{
			ID:               "a_upcoming_1",
			ClientUserID:     CurrentUserID,
			BarberUserID:     "b1",
			ShopID:           "s1",
			LocationID:       "l1",
			Status:           "confirmed",
			StartAt:          today.AddDate(0, 0, 1).Add(14 * time.Hour),
			EndAt:            today.AddDate(0, 0, 1).Add(14*time.Hour + 45*time.Minute),
			QuotedTotalCents: 4500,
			DepositCents:     900,
			Barber:           &barber1,
			Shop:             barber1.Shop,
			Location:         barber1.Location,
			Services: []models.AppointmentLineItem{
				{ID: "ali1", AppointmentID: "a_upcoming_1", ServiceID: "svc1", Name: "Signature Fade", DurationMinutes: 45, PriceCents: 4500},
			},
			CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:               "a_past_1",
			ClientUserID:     CurrentUserID,
			BarberUserID:     "b2",
			ShopID:           "s2",
			LocationID:       "l2",
			Status:           "completed",
			StartAt:          today.AddDate(0, -1, 0).Add(16 * time.Hour),
			EndAt:            today.AddDate(0, -1, 0).Add(16*time.Hour + 75*time.Minute),
			QuotedTotalCents: 7500,
			DepositCents:     1500,
			Barber:           &barber2,
			Shop:             barber2.Shop,
			Location:         barber2.Location,
			Services: []models.AppointmentLineItem{
				{ID: "ali2", AppointmentID: "a_past_1", ServiceID: "svc1", Name: "Signature Fade", DurationMinutes: 45, PriceCents: 4500},
				{ID: "ali3", AppointmentID: "a_past_1", ServiceID: "svc2", Name: "Beard Trim & Shape", DurationMinutes: 30, PriceCents: 3000},
			},
			CreatedAt: now.AddDate(0, -1, -3),
		},
	}

	s.clients = []models.Client{
		{
			ID: "c1", Name: "James Wilson", Phone: "+14165550100", Email: "james@example.com",
			AvatarURL:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
			LastVisit:          now.AddDate(0, 0, -7),
			TotalVisits:        24,
			TotalSpentCents:    108000,
			LifetimeValueCents: 108000,
			PreferredServices:  []string{"Signature Fade", "Beard Trim"},
			Notes:              "Prefers mid fade, likes to chat about sports. Always tips well.",
			CancelCount:        1,
			AverageRating:      5,
			Tags:               []string{"VIP", "Regular", "High Value"},
		},
		{
			ID: "c2", Name: "David Chen", Phone: "+14165550200",
			AvatarURL:          "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200",
			LastVisit:          now.AddDate(0, 0, -12),
			TotalVisits:        12,
			TotalSpentCents:    54000,
			LifetimeValueCents: 54000,
			PreferredServices:  []string{"Hot Towel Shave"},
			Notes:              "Sensitive skin, use premium products only.",
			AverageRating:      5,
			Tags:               []string{"Regular"},
		},
		{
			ID: "c3", Name: "Michael Brown", Phone: "+14165550300",
			LastVisit:          now.AddDate(0, 0, -28),
			TotalVisits:        6,
			TotalSpentCents:    27000,
			LifetimeValueCents: 27000,
			PreferredServices:  []string{"Signature Fade"},
			NoShowCount:        1,
			CancelCount:        2,
			AverageRating:      4,
			Tags:               []string{"At Risk"},
		},
	}

	s.transactions = []models.Transaction{
		{ID: "t1", Type: models.TransactionDeposit, ClientName: "James Wilson", Service: "Signature Fade", AmountCents: 900, Date: today.AddDate(0, 0, -2), Status: "completed", AppointmentID: "a1"},
		{ID: "t2", Type: models.TransactionPayment, ClientName: "David Chen", Service: "Hot Towel Shave", AmountCents: 5500, Date: today.AddDate(0, 0, -1), Status: "completed", AppointmentID: "a2"},
		{ID: "t3", Type: models.TransactionNoShowFee, ClientName: "John Doe", Service: "Signature Fade", AmountCents: 900, Date: today.AddDate(0, 0, -1), Status: "completed", AppointmentID: "a3"},
		{ID: "t4", Type: models.TransactionTip, ClientName: "Michael Brown", Service: "Beard Trim", AmountCents: 1000, Date: today, Status: "completed", AppointmentID: "a4"},
	}

	s.payout = models.PayoutSummary{
		TotalRevenueCents:      245000,
		DepositsCollectedCents: 18000,
		NoShowFeesCents:        2700,
		RefundedAmountCents:    4500,
		PlatformFeeCents:       24500,
		NetPayoutCents:         220500,
		ChairRentCents:         50000,
		CommissionCents:        61250,
	}

	s.schedule = []models.ScheduleBlock{
		{
			ID: "blk1", ClientName: "James Wilson", Service: "Signature Fade",
			StartTime: today.Add(9 * time.Hour), EndTime: today.Add(9*time.Hour + 45*time.Minute),
			Status: models.BlockConfirmed, AmountCents: 4500, DepositPaid: true, ClientPhone: "+14165550100",
		},
		{
			ID: "blk2", ClientName: "Walk-in", Service: "Beard Trim",
			StartTime: today.Add(10 * time.Hour), EndTime: today.Add(10*time.Hour + 30*time.Minute),
			Status: models.BlockWalkIn, AmountCents: 3000,
		},
		{
			ID: "blk3", ClientName: "David Chen", Service: "Hot Towel Shave",
			StartTime: today.Add(11 * time.Hour), EndTime: today.Add(11*time.Hour + 40*time.Minute),
			Status: models.BlockConfirmed, AmountCents: 5500, DepositPaid: true, ClientPhone: "+14165550200",
		},
		{
			ID: "blk4", Service: "Lunch Break",
			StartTime: today.Add(12 * time.Hour), EndTime: today.Add(13 * time.Hour),
			Status: models.BlockBlocked,
		},
		{
			ID: "blk5", ClientName: "Michael Brown", Service: "Signature Fade + Beard",
			StartTime: today.Add(14 * time.Hour), EndTime: today.Add(15*time.Hour + 15*time.Minute),
			Status: models.BlockConfirmed, AmountCents: 7500, DepositPaid: true, ClientPhone: "+14165550300",
		},
	}

	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	amounts := []int{45000, 65000, 52000, 75000, 62000, 80000, 51000}
	counts := []int{6, 9, 7, 10, 8, 11, 7}
	for i, amount := range amounts {
		s.dailyRevenue = append(s.dailyRevenue, models.DailyRevenue{
			Date:         weekStart.AddDate(0, 0, i),
			RevenueCents: amount,
			Appointments: counts[i],
		})
	}

	s.products = []models.InventoryProduct{
		{ID: "p1", ShopID: "s1", SKU: "POM-001", Name: "Premium Matte Pomade", Description: "Strong hold, matte finish pomade for all-day styling.", PriceCents: 2800, StockOnHand: 24, ReorderThreshold: 10, Active: true},
		{ID: "p2", ShopID: "s1", SKU: "BO-001", Name: "Signature Beard Oil", Description: "Nourishing blend of natural oils for healthy beard growth.", PriceCents: 3200, StockOnHand: 18, ReorderThreshold: 8, Active: true},
		{ID: "p3", ShopID: "s1", SKU: "SC-001", Name: "Styling Clay", Description: "Medium hold clay for textured, natural looks.", PriceCents: 2600, StockOnHand: 15, ReorderThreshold: 10, Active: true},
	}

	s.users[CurrentUserID] = models.User{
		ID:          CurrentUserID,
		DisplayName: "Chris Morgan",
		Email:       "chris@example.com",
		RoleFlags:   models.RoleFlags{IsClient: true},
	}
	for _, b := range s.barbers {
		s.users[b.User.ID] = b.User
	}
}
