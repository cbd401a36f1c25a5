package domain

import "github.com/m04kA/SMC-CarManager/internal/enumcodec"

// FuelType код типа топлива, как его передает API
type FuelType int

const (
	FuelPetrol   FuelType = 0
	FuelDiesel   FuelType = 1
	FuelElectric FuelType = 2
	FuelHybrid   FuelType = 3
	FuelLPG      FuelType = 4
)

// BodyType код типа кузова, как его передает API
type BodyType int

const (
	BodyHatchback   BodyType = 0
	BodySedan       BodyType = 1
	BodyEstate      BodyType = 2
	BodySUV         BodyType = 3
	BodyCoupe       BodyType = 4
	BodyConvertible BodyType = 5
	BodyMinivan     BodyType = 6
	BodyPickup      BodyType = 7
)

// Виды перечислений для кодека
const (
	KindFuelType enumcodec.Kind = "fuelType"
	KindBodyType enumcodec.Kind = "bodyType"
)

// FuelTypeLabels подписи типов топлива
var FuelTypeLabels = []enumcodec.Entry{
	{Code: int(FuelPetrol), Label: "Benzyna"},
	{Code: int(FuelDiesel), Label: "Diesel"},
	{Code: int(FuelElectric), Label: "Elektryczny"},
	{Code: int(FuelHybrid), Label: "Hybryda"},
	{Code: int(FuelLPG), Label: "LPG"},
}

// BodyTypeLabels подписи типов кузова
var BodyTypeLabels = []enumcodec.Entry{
	{Code: int(BodyHatchback), Label: "Hatchback"},
	{Code: int(BodySedan), Label: "Sedan"},
	{Code: int(BodyEstate), Label: "Kombi"},
	{Code: int(BodySUV), Label: "SUV"},
	{Code: int(BodyCoupe), Label: "Coupe"},
	{Code: int(BodyConvertible), Label: "Kabriolet"},
	{Code: int(BodyMinivan), Label: "Minivan"},
	{Code: int(BodyPickup), Label: "Pickup"},
}

// Codec общий для процесса кодек, строится один раз при старте и дальше только читается
var Codec = enumcodec.MustNew(map[enumcodec.Kind][]enumcodec.Entry{
	KindFuelType: FuelTypeLabels,
	KindBodyType: BodyTypeLabels,
})

// Label подпись типа топлива
func (f FuelType) Label() string {
	return Codec.Decode(int(f), KindFuelType)
}

// IsValid true для кодов из закрытого набора
func (f FuelType) IsValid() bool {
	return Codec.Has(int(f), KindFuelType)
}

// Label подпись типа кузова
func (b BodyType) Label() string {
	return Codec.Decode(int(b), KindBodyType)
}

// IsValid true для кодов из закрытого набора
func (b BodyType) IsValid() bool {
	return Codec.Has(int(b), KindBodyType)
}
