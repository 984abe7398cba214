package models

// Dataset is the full data aggregate held in memory. A successful load from
// the sheet replaces it wholesale; local-fallback CRUD mutates it in place.
type Dataset struct {
	Kas   []KasEntry    `json:"kas"`
	Iuran []IuranRecord `json:"iuran"`
	Ronda []RondaShift  `json:"ronda"`
	Info  []InfoItem    `json:"info"`
}

// Clone returns a deep copy of the aggregate
func (d Dataset) Clone() Dataset {
	return Dataset{
		Kas:   append([]KasEntry(nil), d.Kas...),
		Iuran: append([]IuranRecord(nil), d.Iuran...),
		Ronda: append([]RondaShift(nil), d.Ronda...),
		Info:  append([]InfoItem(nil), d.Info...),
	}
}
