package seeders

import "gearguard/pkg/constants"

// DemoPassword is shared by every seeded account.
const DemoPassword = "gearguard123"

type userSeed struct {
	Email string
	Name  string
	Role  string
}

type teamSeed struct {
	Name        string
	Description string
	Members     []string // member emails
}

type equipmentSeed struct {
	Name         string
	SerialNumber string
	Category     string
	Location     string
	Department   string
	PurchaseDate string
	Warranty     string
	Team         string
	Technician   string // email, optional
}

var demoUsers = []userSeed{
	{Email: "admin@gearguard.io", Name: "Alex Admin", Role: constants.RoleAdmin},
	{Email: "manager@gearguard.io", Name: "Morgan Manager", Role: constants.RoleManager},
	{Email: "tech.mech@gearguard.io", Name: "Taylor Mechanic", Role: constants.RoleTechnician},
	{Email: "tech.elec@gearguard.io", Name: "Jordan Electrician", Role: constants.RoleTechnician},
	{Email: "tech.it@gearguard.io", Name: "Casey Support", Role: constants.RoleTechnician},
	{Email: "employee@gearguard.io", Name: "Riley Operator", Role: constants.RoleEmployee},
}

var demoTeams = []teamSeed{
	{Name: "Mechanics", Description: "Presses, pumps and conveyors", Members: []string{"tech.mech@gearguard.io"}},
	{Name: "Electricians", Description: "Power distribution and motors", Members: []string{"tech.elec@gearguard.io"}},
	{Name: "IT Support", Description: "Computers, printers and network", Members: []string{"tech.it@gearguard.io"}},
}

var demoEquipment = []equipmentSeed{
	{Name: "Hydraulic Press HP-200", SerialNumber: "HP-200-0001", Category: "Presses", Location: "Plant A, Bay 1",
		Department: "Production", PurchaseDate: "2021-03-15", Warranty: "2024-03-15", Team: "Mechanics", Technician: "tech.mech@gearguard.io"},
	{Name: "Conveyor Belt CB-12", SerialNumber: "CB-12-0042", Category: "Conveyors", Location: "Plant A, Line 2",
		Department: "Production", PurchaseDate: "2022-07-01", Warranty: "2027-07-01", Team: "Mechanics"},
	{Name: "Main Switchboard MSB-1", SerialNumber: "MSB-1-0007", Category: "Electrical", Location: "Plant A, Room E1",
		Department: "Facilities", PurchaseDate: "2019-11-20", Warranty: "2029-11-20", Team: "Electricians", Technician: "tech.elec@gearguard.io"},
	{Name: "Office Printer LX-500", SerialNumber: "LX-500-3321", Category: "Printers", Location: "HQ, 2nd floor",
		Department: "Administration", PurchaseDate: "2023-01-10", Warranty: "2025-01-10", Team: "IT Support", Technician: "tech.it@gearguard.io"},
	{Name: "Laptop Fleet Unit 17", SerialNumber: "LT-17-9001", Category: "Computers", Location: "HQ, Finance",
		Department: "Finance", PurchaseDate: "2024-05-02", Warranty: "2027-05-02", Team: "IT Support"},
}
