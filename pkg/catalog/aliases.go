package catalog

// builtinAliases maps surface forms returned by recommendation models to
// catalog keys. Aliases are stored normalized and never repeat a key.
var builtinAliases = map[string]Key{
	// sofa
	"couch": Sofa, "settee": Sofa, "loveseat": Sofa, "sectional": Sofa,
	"sectional_sofa": Sofa, "three_seater": Sofa, "two_seater": Sofa,
	"l_shaped_sofa": Sofa, "modular_sofa": Sofa, "sleeper_sofa": Sofa,

	// table
	"coffee_table": Table, "center_table": Table, "occasional_table": Table,
	"cocktail_table": Table, "end_table": Table, "accent_table": Table,
	"console_table": Table, "tea_table": Table,

	// chair
	"armchair": Chair, "arm_chair": Chair, "accent_chair": Chair,
	"lounge_chair": Chair, "dining_chair": Chair, "office_chair": Chair,
	"recliner": Chair, "rocking_chair": Chair, "stool": Chair,
	"bar_stool": Chair, "ottoman": Chair, "pouf": Chair, "bench": Chair,

	// bed
	"queen_bed": Bed, "king_bed": Bed, "double_bed": Bed,
	"single_bed": Bed, "twin_bed": Bed, "platform_bed": Bed,
	"bed_frame": Bed, "cot": Bed, "mattress": Bed, "bunk_bed": Bed,

	// wardrobe
	"closet": Wardrobe, "cupboard": Wardrobe, "armoire": Wardrobe,
	"cabinet": Wardrobe, "storage_cabinet": Wardrobe, "dresser": Wardrobe,
	"chest_of_drawers": Wardrobe, "tallboy": Wardrobe,

	// bookshelf
	"bookcase": Bookshelf, "book_shelf": Bookshelf, "shelving_unit": Bookshelf,
	"shelf": Bookshelf, "shelves": Bookshelf, "storage_shelf": Bookshelf,
	"display_shelf": Bookshelf, "wall_shelf": Bookshelf, "rack": Bookshelf,
	"display_unit": Bookshelf, "floating_shelf": Bookshelf,

	// lamp
	"floor_lamp": Lamp, "table_lamp": Lamp, "desk_lamp": Lamp,
	"pendant_light": Lamp, "chandelier": Lamp, "light": Lamp,
	"lighting": Lamp, "standing_lamp": Lamp, "reading_lamp": Lamp,
	"wall_sconce": Lamp, "sconce": Lamp, "ceiling_light": Lamp,

	// desk
	"study_desk": Desk, "work_desk": Desk, "writing_desk": Desk,
	"computer_desk": Desk, "study_table": Desk, "work_table": Desk,
	"workstation": Desk, "office_desk": Desk, "vanity": Desk,

	// rug
	"carpet": Rug, "area_rug": Rug, "floor_mat": Rug, "mat": Rug,
	"runner": Rug, "floor_covering": Rug,

	// tv_stand
	"tv_unit": TVStand, "tv_cabinet": TVStand, "entertainment_center": TVStand,
	"media_console": TVStand, "entertainment_unit": TVStand,
	"media_unit": TVStand, "tv_table": TVStand, "television_stand": TVStand,
	"television_unit": TVStand,

	// dining_table
	"dining_set": DiningTable, "dinner_table": DiningTable,
	"kitchen_table": DiningTable, "eating_table": DiningTable,

	// side_table
	"nightstand": SideTable, "night_stand": SideTable,
	"bedside_table": SideTable, "end_table_small": SideTable,
	"accent_table_small": SideTable, "pedestal_table": SideTable,

	// plant
	"indoor_plant": Plant, "houseplant": Plant, "potted_plant": Plant,
	"flower_pot": Plant, "planter": Plant, "succulent": Plant,
	"greenery": Plant, "fern": Plant, "palm": Plant, "cactus": Plant,
	"flower_vase": Plant, "vase": Plant,

	// mirror
	"wall_mirror": Mirror, "full_length_mirror": Mirror,
	"dresser_mirror": Mirror, "standing_mirror": Mirror,
	"vanity_mirror": Mirror, "floor_mirror": Mirror,
}

// BuiltinAliases returns a copy of the built-in alias vocabulary.
func BuiltinAliases() map[string]string {
	out := make(map[string]string, len(builtinAliases))
	for a, k := range builtinAliases {
		out[a] = string(k)
	}
	return out
}
