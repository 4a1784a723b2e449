// Package seed generates the demo fixture set and moves it between the
// database and the in-memory controllers.
package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/simp-lee/gateadmin/internal/config"
	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/trip"
)

// Dataset is one full set of entities.
type Dataset struct {
	Stations []domain.Station
	Gates    []domain.Gate
	Users    []domain.GateUser
	Trips    []domain.TripRecord
}

// namespace scopes the name-based ids of demo entities.
var namespace = uuid.MustParse("6f1c2d9e-3b7a-4c55-9e0d-52a1f7c3b8e4")

var (
	cities     = []string{"Lisbon", "Porto", "Braga", "Coimbra"}
	lines      = []string{"Blue", "Green", "Red", "Yellow"}
	streets    = []string{"Avenida da Liberdade", "Rua Augusta", "Rua de Santa Catarina", "Praça do Comércio", "Rua do Carmo"}
	firstNames = []string{"Ana", "Bruno", "Carla", "Diogo", "Eva", "Filipe", "Gil", "Helena", "Inês", "João"}
	lastNames  = []string{"Silva", "Santos", "Ferreira", "Pereira", "Costa", "Oliveira", "Martins", "Sousa"}
	gateTypes  = []domain.GateType{domain.GateEntry, domain.GateExit, domain.GateBidirectional}
	roles      = []domain.GateUserRole{domain.RoleOperator, domain.RoleOperator, domain.RoleMaintainer, domain.RoleAdmin}
	payments   = []domain.PaymentMethod{domain.PayCard, domain.PayCard, domain.PayQR, domain.PayCash}
)

func id(kind string, i int) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%s/%d", kind, i))).String()
}

// Generate builds a deterministic dataset sized by cfg. Timestamps are laid
// out backwards from now, so the same cfg and now always yield equal data.
func Generate(cfg config.SeedConfig, now time.Time) Dataset {
	rng := rand.New(rand.NewPCG(uint64(cfg.Stations), uint64(cfg.Trips)))
	now = now.UTC().Truncate(time.Second)
	start := now.AddDate(0, 0, -30)

	var d Dataset
	for i := range cfg.Stations {
		status := domain.StationActive
		switch {
		case i%7 == 6:
			status = domain.StationMaintenance
		case i%11 == 10:
			status = domain.StationInactive
		}
		city, line := cities[i%len(cities)], lines[(i/len(cities))%len(lines)]
		at := start.Add(time.Duration(i) * time.Hour)
		d.Stations = append(d.Stations, domain.Station{
			BaseModel: domain.BaseModel{ID: id("station", i), CreatedAt: at, UpdatedAt: at},
			Code:      fmt.Sprintf("S%03d", i+1),
			Name:      fmt.Sprintf("%s %s %d", city, line, i/(len(cities)*len(lines))+1),
			City:      city,
			Line:      line,
			Address:   fmt.Sprintf("%d %s", 10+rng.IntN(290), streets[i%len(streets)]),
			Status:    status,
		})
	}

	for si, st := range d.Stations {
		for j := range cfg.GatesPerStation {
			n := si*cfg.GatesPerStation + j
			status := domain.GateOnline
			switch rng.IntN(10) {
			case 0:
				status = domain.GateOffline
			case 1:
				status = domain.GateMaintenance
			}
			at := st.CreatedAt.Add(time.Duration(j+1) * time.Minute)
			d.Gates = append(d.Gates, domain.Gate{
				BaseModel:     domain.BaseModel{ID: id("gate", n), CreatedAt: at, UpdatedAt: at},
				Code:          fmt.Sprintf("%s-G%02d", st.Code, j+1),
				Name:          fmt.Sprintf("%s gate %d", st.Name, j+1),
				StationID:     st.ID,
				StationName:   st.Name,
				Type:          gateTypes[j%len(gateTypes)],
				Status:        status,
				IPAddress:     fmt.Sprintf("10.%d.%d.%d", si/250, si%250, j+10),
				PassCount:     int64(rng.IntN(50_000)),
				LastHeartbeat: now.Add(-time.Duration(rng.IntN(3600)) * time.Second),
			})
		}
	}

	for i := range cfg.Users {
		status := domain.GateUserActive
		switch {
		case i%9 == 8:
			status = domain.GateUserLocked
		case i%5 == 4:
			status = domain.GateUserDisabled
		}
		first, last := firstNames[i%len(firstNames)], lastNames[(i/len(firstNames)+i)%len(lastNames)]
		at := start.Add(time.Duration(i) * 6 * time.Hour)
		u := domain.GateUser{
			BaseModel:  domain.BaseModel{ID: id("user", i), CreatedAt: at, UpdatedAt: at},
			Username:   fmt.Sprintf("op%03d", i+1),
			Name:       first + " " + last,
			Phone:      fmt.Sprintf("+351 91%d %03d %03d", i%10, rng.IntN(1000), rng.IntN(1000)),
			CardNo:     fmt.Sprintf("STAFF%05d", i+1),
			Role:       roles[i%len(roles)],
			Status:     status,
			LoginCount: int64(rng.IntN(400)),
		}
		if u.LoginCount > 0 {
			u.LastLoginAt = now.Add(-time.Duration(rng.IntN(72)) * time.Hour)
		}
		d.Users = append(d.Users, u)
	}

	if len(d.Stations) == 0 {
		return d
	}
	for i := range cfg.Trips {
		entrySt := d.Stations[rng.IntN(len(d.Stations))]
		exitSt := d.Stations[rng.IntN(len(d.Stations))]
		entry := start.Add(time.Duration(rng.IntN(30*24*60)) * time.Minute)
		t := domain.TripRecord{
			BaseModel:     domain.BaseModel{ID: id("trip", i), CreatedAt: entry, UpdatedAt: entry},
			CardNo:        fmt.Sprintf("CARD%08d", rng.IntN(100_000_000)),
			PassengerName: firstNames[rng.IntN(len(firstNames))] + " " + lastNames[rng.IntN(len(lastNames))],
			EntryStation:  entrySt.Name,
			EntryGate:     gateCode(entrySt, rng.IntN(max(cfg.GatesPerStation, 1))),
			EntryTime:     entry,
			PaymentMethod: payments[rng.IntN(len(payments))],
		}
		t.TripNo = trip.TripNo(entry, t.ID)

		switch roll := rng.IntN(20); {
		case roll == 0:
			t.Status = domain.TripInProgress
		case roll == 1:
			t.Status = domain.TripAbnormal
			t.ExitStation = entrySt.Name
			t.ExitGate = gateCode(entrySt, 0)
			t.ExitTime = entry.Add(2 * time.Minute)
		default:
			t.Status = domain.TripCompleted
			t.ExitStation = exitSt.Name
			t.ExitGate = gateCode(exitSt, rng.IntN(max(cfg.GatesPerStation, 1)))
			t.ExitTime = entry.Add(time.Duration(5+rng.IntN(55)) * time.Minute)
			t.Fare = int64(150 + 25*rng.IntN(13))
		}
		d.Trips = append(d.Trips, t)
	}
	return d
}

func gateCode(st domain.Station, j int) string {
	return fmt.Sprintf("%s-G%02d", st.Code, j+1)
}
