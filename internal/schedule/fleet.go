package schedule

// ShipTypeConfig lists the equipment and activities valid for one ship type.
// Work records are validated against the equipment list of the vessel's type.
type ShipTypeConfig struct {
	Label      string   `json:"label"`
	Equipment  []string `json:"equipment"`
	Activities []string `json:"activities"`
}

// HasEquipment reports whether name is part of this ship type's equipment.
func (c ShipTypeConfig) HasEquipment(name string) bool {
	for _, e := range c.Equipment {
		if e == name {
			return true
		}
	}
	return false
}

// ShipTypes returns the supported ship types keyed by their type code.
func ShipTypes() map[string]ShipTypeConfig {
	return map[string]ShipTypeConfig{
		"tanker": {
			Label: "Tanker",
			Equipment: []string{
				"Cargo Pumps", "Inert Gas System", "COW System", "Heating System",
				"Main Engine", "Auxiliary Engine", "Generator",
			},
			Activities: []string{
				"Cargo Operation", "Tank Cleaning", "Inerting", "Bunkering",
				"Maintenance", "Safety Rounds",
			},
		},
		"container": {
			Label: "Container Ship",
			Equipment: []string{
				"Container Crane", "Reefer System", "Lashing Equipment",
				"Main Engine", "Auxiliary Engine", "Generator",
			},
			Activities: []string{
				"Container Loading", "Container Unloading", "Reefer Monitoring",
				"Lashing Operation", "Maintenance",
			},
		},
		"bulkCarrier": {
			Label: "Bulk Carrier",
			Equipment: []string{
				"Cargo Crane", "Ventilation System", "Conveyor System",
				"Main Engine", "Auxiliary Engine", "Generator",
			},
			Activities: []string{
				"Bulk Loading", "Bulk Discharging", "Hold Cleaning",
				"Ventilation", "Maintenance",
			},
		},
	}
}
