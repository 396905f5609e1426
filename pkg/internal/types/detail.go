package types

// 每种房源类型一个明细载荷，字段与对应明细表一一对应.
// 数值字段使用 Float/Int 以容忍字符串形式的数字.
// Columns 只导出非空字段，更新时不会把缺省值覆盖进库.

// ApartmentDetailPayload 公寓明细载荷.
type ApartmentDetailPayload struct {
	Surface  *Float `json:"surface"`
	Rooms    *Int   `json:"rooms"`
	Bedrooms *Int   `json:"bedrooms"`
	Floor    *Int   `json:"floor"`
	Elevator *bool  `json:"elevator"`
	Balcony  *bool  `json:"balcony"`
	Parking  *bool  `json:"parking"`
}

func (p *ApartmentDetailPayload) HasSurface() bool { return p.Surface != nil }

func (p *ApartmentDetailPayload) Columns() map[string]any {
	cols := map[string]any{}
	putFloat(cols, "surface", p.Surface)
	putInt(cols, "rooms", p.Rooms)
	putInt(cols, "bedrooms", p.Bedrooms)
	putInt(cols, "floor", p.Floor)
	putBool(cols, "elevator", p.Elevator)
	putBool(cols, "balcony", p.Balcony)
	putBool(cols, "parking", p.Parking)

	return cols
}

// LandDetailPayload 土地明细载荷.
type LandDetailPayload struct {
	Surface     *Float  `json:"surface"`
	Buildable   *bool   `json:"buildable"`
	Serviced    *bool   `json:"serviced"`
	ZoningPlan  *string `json:"zoning_plan"`
	RoadAccess  *bool   `json:"road_access"`
	FrontLength *Float  `json:"front_length"`
}

func (p *LandDetailPayload) HasSurface() bool { return p.Surface != nil }

func (p *LandDetailPayload) Columns() map[string]any {
	cols := map[string]any{}
	putFloat(cols, "surface", p.Surface)
	putBool(cols, "buildable", p.Buildable)
	putBool(cols, "serviced", p.Serviced)
	putString(cols, "zoning_plan", p.ZoningPlan)
	putBool(cols, "road_access", p.RoadAccess)
	putFloat(cols, "front_length", p.FrontLength)

	return cols
}

// VillaDetailPayload 别墅明细载荷.
type VillaDetailPayload struct {
	Surface       *Float  `json:"surface"`
	LandSurface   *Float  `json:"land_surface"`
	Rooms         *Int    `json:"rooms"`
	Floors        *Int    `json:"floors"`
	Pool          *bool   `json:"pool"`
	Garden        *bool   `json:"garden"`
	Garage        *bool   `json:"garage"`
	YearBuilt     *Int    `json:"year_built"`
	SecuritySetup *string `json:"security_setup"`
}

func (p *VillaDetailPayload) HasSurface() bool { return p.Surface != nil }

func (p *VillaDetailPayload) Columns() map[string]any {
	cols := map[string]any{}
	putFloat(cols, "surface", p.Surface)
	putFloat(cols, "land_surface", p.LandSurface)
	putInt(cols, "rooms", p.Rooms)
	putInt(cols, "floors", p.Floors)
	putBool(cols, "pool", p.Pool)
	putBool(cols, "garden", p.Garden)
	putBool(cols, "garage", p.Garage)
	putInt(cols, "year_built", p.YearBuilt)
	putString(cols, "security_setup", p.SecuritySetup)

	return cols
}

// CommercialDetailPayload 商铺明细载荷.
type CommercialDetailPayload struct {
	Surface     *Float  `json:"surface"`
	Frontage    *Float  `json:"frontage"`
	Activity    *string `json:"activity"`
	Mezzanine   *bool   `json:"mezzanine"`
	WaterAccess *bool   `json:"water_access"`
}

func (p *CommercialDetailPayload) HasSurface() bool { return p.Surface != nil }

func (p *CommercialDetailPayload) Columns() map[string]any {
	cols := map[string]any{}
	putFloat(cols, "surface", p.Surface)
	putFloat(cols, "frontage", p.Frontage)
	putString(cols, "activity", p.Activity)
	putBool(cols, "mezzanine", p.Mezzanine)
	putBool(cols, "water_access", p.WaterAccess)

	return cols
}

// BuildingDetailPayload 整栋楼明细载荷.
type BuildingDetailPayload struct {
	Surface   *Float `json:"surface"`
	Floors    *Int   `json:"floors"`
	Units     *Int   `json:"units"`
	Elevator  *bool  `json:"elevator"`
	YearBuilt *Int   `json:"year_built"`
}

func (p *BuildingDetailPayload) HasSurface() bool { return p.Surface != nil }

func (p *BuildingDetailPayload) Columns() map[string]any {
	cols := map[string]any{}
	putFloat(cols, "surface", p.Surface)
	putInt(cols, "floors", p.Floors)
	putInt(cols, "units", p.Units)
	putBool(cols, "elevator", p.Elevator)
	putInt(cols, "year_built", p.YearBuilt)

	return cols
}

func putFloat(cols map[string]any, key string, v *Float) {
	if v != nil {
		cols[key] = float64(*v)
	}
}

func putInt(cols map[string]any, key string, v *Int) {
	if v != nil {
		cols[key] = int(*v)
	}
}

func putBool(cols map[string]any, key string, v *bool) {
	if v != nil {
		cols[key] = *v
	}
}

func putString(cols map[string]any, key string, v *string) {
	if v != nil {
		cols[key] = *v
	}
}
