package porkbelly

// ZoneFunc runs when the player first enters a zone.
type ZoneFunc func(w *World, player *Actor)

// Zone is a circular one-shot trigger volume.
type Zone struct {
	Name    string
	Center  Vec2
	Radius  float64
	onEnter ZoneFunc
	fired   bool
}

// Contains reports whether p lies within the zone radius, edge included.
func (z *Zone) Contains(p Vec2) bool {
	return Distance(p, z.Center) <= z.Radius
}

// Fired reports whether the zone has triggered.
func (z *Zone) Fired() bool {
	return z.fired
}

// Zones is the ordered list of trigger zones.
type Zones struct {
	list []*Zone
}

// Add registers a zone. Zones are checked in the order they were added.
// Panics if onEnter is nil.
func (zs *Zones) Add(name string, center Vec2, radius float64, onEnter ZoneFunc) *Zone {
	if onEnter == nil {
		panic("porkbelly: zone " + name + " has no callback")
	}
	z := &Zone{Name: name, Center: center, Radius: radius, onEnter: onEnter}
	zs.list = append(zs.list, z)
	return z
}

// All returns every zone in check order. The slice MUST NOT be mutated.
func (zs *Zones) All() []*Zone {
	return zs.list
}

// check fires every unfired zone containing the player. It returns how many
// zones were tested and how many fired.
func (zs *Zones) check(w *World, player *Actor) (tested, fired int) {
	pos := player.Position()
	n := len(zs.list)
	for i := 0; i < n; i++ {
		z := zs.list[i]
		if z.fired {
			continue
		}
		tested++
		if !z.Contains(pos) {
			continue
		}
		z.onEnter(w, player)
		z.fired = true
		fired++
		w.sink.Emit(Event{Kind: EventZoneEntered, Zone: z.Name})
		w.log.Info("zone entered", "zone", z.Name)
	}
	return tested, fired
}
