package scheme

// Role names a semantic color slot of a Material scheme.
type Role string

// Material 3 roles, in the order they are emitted.
const (
	Primary                 Role = "primary"
	OnPrimary               Role = "onPrimary"
	PrimaryContainer        Role = "primaryContainer"
	OnPrimaryContainer      Role = "onPrimaryContainer"
	Secondary               Role = "secondary"
	OnSecondary             Role = "onSecondary"
	SecondaryContainer      Role = "secondaryContainer"
	OnSecondaryContainer    Role = "onSecondaryContainer"
	Tertiary                Role = "tertiary"
	OnTertiary              Role = "onTertiary"
	TertiaryContainer       Role = "tertiaryContainer"
	OnTertiaryContainer     Role = "onTertiaryContainer"
	Error                   Role = "error"
	OnError                 Role = "onError"
	ErrorContainer          Role = "errorContainer"
	OnErrorContainer        Role = "onErrorContainer"
	Background              Role = "background"
	OnBackground            Role = "onBackground"
	Surface                 Role = "surface"
	OnSurface               Role = "onSurface"
	SurfaceVariant          Role = "surfaceVariant"
	OnSurfaceVariant        Role = "onSurfaceVariant"
	Outline                 Role = "outline"
	OutlineVariant          Role = "outlineVariant"
	Shadow                  Role = "shadow"
	Scrim                   Role = "scrim"
	InverseSurface          Role = "inverseSurface"
	InverseOnSurface        Role = "inverseOnSurface"
	InversePrimary          Role = "inversePrimary"
	SurfaceTint             Role = "surfaceTint"
	SurfaceDim              Role = "surfaceDim"
	SurfaceBright           Role = "surfaceBright"
	SurfaceContainerLowest  Role = "surfaceContainerLowest"
	SurfaceContainerLow     Role = "surfaceContainerLow"
	SurfaceContainer        Role = "surfaceContainer"
	SurfaceContainerHigh    Role = "surfaceContainerHigh"
	SurfaceContainerHighest Role = "surfaceContainerHighest"
)

func (r Role) String() string {
	return string(r)
}

// PaletteName identifies one of the key tonal palettes derived from a seed.
type PaletteName string

const (
	PalettePrimary        PaletteName = "primary"
	PaletteSecondary      PaletteName = "secondary"
	PaletteTertiary       PaletteName = "tertiary"
	PaletteNeutral        PaletteName = "neutral"
	PaletteNeutralVariant PaletteName = "neutralVariant"
	PaletteError          PaletteName = "error"
)

// Palettes returns the key palettes in emission order.
func Palettes() []PaletteName {
	return []PaletteName{
		PalettePrimary,
		PaletteSecondary,
		PaletteTertiary,
		PaletteNeutral,
		PaletteNeutralVariant,
		PaletteError,
	}
}

// Spec describes where a role takes its color from.
type Spec struct {
	Role    Role
	Palette PaletteName
	Light   int
	Dark    int
}

// Tone returns the tone used for the given variant.
func (s Spec) Tone(v Variant) int {
	if v == Dark {
		return s.Dark
	}
	return s.Light
}

// specs is the Material 3 tone table. Its order is the canonical role order.
var specs = []Spec{
	{Primary, PalettePrimary, 40, 80},
	{OnPrimary, PalettePrimary, 100, 20},
	{PrimaryContainer, PalettePrimary, 90, 30},
	{OnPrimaryContainer, PalettePrimary, 10, 90},
	{Secondary, PaletteSecondary, 40, 80},
	{OnSecondary, PaletteSecondary, 100, 20},
	{SecondaryContainer, PaletteSecondary, 90, 30},
	{OnSecondaryContainer, PaletteSecondary, 10, 90},
	{Tertiary, PaletteTertiary, 40, 80},
	{OnTertiary, PaletteTertiary, 100, 20},
	{TertiaryContainer, PaletteTertiary, 90, 30},
	{OnTertiaryContainer, PaletteTertiary, 10, 90},
	{Error, PaletteError, 40, 80},
	{OnError, PaletteError, 100, 20},
	{ErrorContainer, PaletteError, 90, 30},
	{OnErrorContainer, PaletteError, 10, 90},
	{Background, PaletteNeutral, 99, 10},
	{OnBackground, PaletteNeutral, 10, 90},
	{Surface, PaletteNeutral, 99, 10},
	{OnSurface, PaletteNeutral, 10, 90},
	{SurfaceVariant, PaletteNeutralVariant, 90, 30},
	{OnSurfaceVariant, PaletteNeutralVariant, 30, 80},
	{Outline, PaletteNeutralVariant, 50, 60},
	{OutlineVariant, PaletteNeutralVariant, 80, 30},
	{Shadow, PaletteNeutral, 0, 0},
	{Scrim, PaletteNeutral, 0, 0},
	{InverseSurface, PaletteNeutral, 20, 90},
	{InverseOnSurface, PaletteNeutral, 95, 20},
	{InversePrimary, PalettePrimary, 80, 40},
	{SurfaceTint, PalettePrimary, 40, 80},
	{SurfaceDim, PaletteNeutral, 87, 6},
	{SurfaceBright, PaletteNeutral, 98, 24},
	{SurfaceContainerLowest, PaletteNeutral, 100, 4},
	{SurfaceContainerLow, PaletteNeutral, 96, 10},
	{SurfaceContainer, PaletteNeutral, 94, 12},
	{SurfaceContainerHigh, PaletteNeutral, 92, 17},
	{SurfaceContainerHighest, PaletteNeutral, 90, 22},
}

// Roles returns every role in canonical order.
func Roles() []Role {
	roles := make([]Role, len(specs))
	for i, s := range specs {
		roles[i] = s.Role
	}
	return roles
}

// Specs returns a copy of the tone table.
func Specs() []Spec {
	return append([]Spec(nil), specs...)
}

// SpecOf returns the tone table entry of a role.
func SpecOf(r Role) (Spec, bool) {
	for _, s := range specs {
		if s.Role == r {
			return s, true
		}
	}
	return Spec{}, false
}
