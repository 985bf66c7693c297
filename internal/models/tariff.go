package models

// TariffEntry is the persisted form of one tariff reference row.
type TariffEntry struct {
	HSCode          string `bson:"hs_code"`
	ItemDescription string `bson:"item_description"`
	Unit            string `bson:"unit"`
	BasicDutySch    string `bson:"basic_duty_sch"`
	BasicDutyNtfn   string `bson:"basic_duty_ntfn"`
	IGST            string `bson:"igst"`
	SWS             string `bson:"sws"`

	AuditFields `bson:",inline"`
}
