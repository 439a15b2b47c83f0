package models

// Doctor is an entry in the static physician directory shown on the booking
// and confirmation pages.
type Doctor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

var Doctors = []Doctor{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-remirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

// FindDoctor matches an appointment's recorded physician against the
// directory by display name. Returns nil when no entry matches.
func FindDoctor(name string) *Doctor {
	for i := range Doctors {
		if Doctors[i].Name == name {
			return &Doctors[i]
		}
	}
	return nil
}
