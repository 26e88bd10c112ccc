package schema

// Registry maps a collection name to its content schema. Built once at
// startup and immutable afterwards.
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry returns a registry holding the built-in content types.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]*Schema)}
	for _, s := range builtinSchemas() {
		r.schemas[s.Name] = s
	}
	return r
}

// Lookup returns the schema for a collection name, or nil if the collection
// has no registered schema.
func (r *Registry) Lookup(name string) *Schema {
	return r.schemas[name]
}

// Names returns all registered collection names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	return names
}

// Shorthand constructors used by the schema definitions below.

func str(maxLen int) Field    { return StringField{MaxLen: maxLen} }
func optStr(maxLen int) Field { return StringField{MaxLen: maxLen, Optional: true} }
func num() Field              { return NumberField{} }
func optBool() Field          { return BoolField{Optional: true} }
func media() Field            { return MediaField{} }
func optMedia() Field         { return MediaField{Optional: true} }

func object(fields map[string]Field) Field { return ObjectField{Fields: fields} }

func array(element Field) Field { return ArrayField{Element: element} }

// idField appears on every content type; the store assigns it, so it is
// always optional in the payload.
func idField() Field { return StringField{MaxLen: 100, Optional: true} }

func builtinSchemas() []*Schema {
	return []*Schema{
		mediaSchema(),
		brandSchema(),
		contactPageSchema(),
		footerSchema(),
		homepageSchema(),
		navigationBarSchema(),
		medicalSkinExpertPageSchema(),
		orthomolecularTherapistPageSchema(),
		ourTeamPageSchema(),
		treatmentSchema(),
		treatmentsPageSchema(),
	}
}

func mediaSchema() *Schema {
	return &Schema{
		Name: "media",
		Fields: map[string]Field{
			"id":  idField(),
			"alt": str(500),
			"url": str(500),
		},
	}
}

func brandSchema() *Schema {
	return &Schema{
		Name: "merk",
		Fields: map[string]Field{
			"id":                    idField(),
			"name":                  str(100),
			"logo":                  media(),
			"companyUrl":            optStr(200),
			"heading":               optStr(100),
			"description":           str(1000),
			"heading2":              optStr(100),
			"description2":          optStr(1000),
			"image":                 media(),
			"heading_section2":      optStr(100),
			"description_section2":  optStr(1000),
			"heading2_section2":     optStr(100),
			"description2_section2": optStr(1000),
			"image_section2":        optMedia(),
		},
	}
}

func contactPageSchema() *Schema {
	fields := map[string]Field{
		"id":                 idField(),
		"title":              str(100),
		"subtitle":           str(200),
		"description":        str(1000),
		"openingTimesTitle":  str(100),
		"buttonText":         str(50),
		"buttonUrl":          str(200),
		"contactFormTitle":   str(100),
		"contactFormSubTitle": str(200),
		"placeholderName":    str(50),
		"placeholderEmail":   str(50),
		"placeholderPhone":   str(50),
		"placeholderMessage": str(100),
		"buttonFormText":     str(50),
		"image":              media(),
	}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		fields[day+"Text"] = str(50)
		fields[day+"Time"] = str(50)
	}
	return &Schema{Name: "contact", Fields: fields}
}

func footerSchema() *Schema {
	return &Schema{
		Name: "footer",
		Fields: map[string]Field{
			"id":         idField(),
			"logo":       media(),
			"columnName": str(100),
			"columnItems": array(object(map[string]Field{
				"id":   idField(),
				"name": str(100),
				"url":  str(200),
			})),
			"contactHeading": str(100),
			"addressLine1":   str(100),
			"addressLine2":   str(100),
			"phone1":         str(20),
			"phone2":         str(20),
			"extraText":      str(200),
			"email":          str(100),
			"facebookUrl":    str(200),
			"instagramUrl":   str(200),
		},
	}
}

func homepageSchema() *Schema {
	return &Schema{
		Name: "homepagina",
		Fields: map[string]Field{
			"id":                         idField(),
			"heroWelcomeText":            str(100),
			"heroCompanyName":            str(100),
			"heroText":                   str(1000),
			"heroButtonText":             str(50),
			"heroButtonUrl":              str(200),
			"heroImage":                  media(),
			"aboutUsTitle":               str(100),
			"aboutUsSubTitle":            str(200),
			"aboutUsText":                str(1000),
			"aboutUsButtonText":          str(50),
			"aboutUsButtonUrl":           str(200),
			"aboutUsImage1":              media(),
			"aboutUsImage2":              media(),
			"aboutUsImage3":              media(),
			"moreAboutUsTitle":           str(100),
			"moreAboutUsSubTitle":        str(200),
			"moreAboutUsText":            str(1000),
			"moreAboutUsButtonText":      str(50),
			"moreAboutUsButtonUrl":       str(200),
			"moreAboutUsImage":           media(),
			"popularTreatmentTitleSmall": str(100),
			"popularTreatmentTitleBig":   str(100),
			"popularTreatmentButtonText": str(50),
			"popularTreatmentButtonUrl":  str(200),
			"brandSectionTitle":          str(100),
			"brandSectionSubTitle":       str(200),
			"brandSectionText":           str(1000),
			"brandSectionButtonText":     str(50),
			"brandSectionImage":          media(),
		},
	}
}

func navigationBarSchema() *Schema {
	return &Schema{
		Name: "navigatie",
		Fields: map[string]Field{
			"id":   idField(),
			"logo": media(),
			"navItems": array(object(map[string]Field{
				"id":   idField(),
				"name": str(50),
				"url":  str(200),
			})),
		},
	}
}

// expertPageFields is shared by the two specialist pages, which have an
// identical three-section layout.
func expertPageFields() map[string]Field {
	return map[string]Field{
		"id":                  idField(),
		"title":               str(100),
		"subtitle":            str(200),
		"description":         str(1000),
		"buttonText":          optStr(50),
		"buttonUrl":           optStr(200),
		"image":               media(),
		"titleSection2":       str(100),
		"subtitleSection2":    str(200),
		"descriptionSection2": str(1000),
		"image1Section2":      media(),
		"image2Section2":      media(),
		"image3Section2":      media(),
		"buttonTextSection2":  optStr(50),
		"buttonUrlSection2":   optStr(200),
		"titleSection3":       str(100),
		"subtitleSection3":    str(200),
		"descriptionSection3": str(1000),
		"imageSection3":       media(),
		"buttonTextSection3":  optStr(50),
		"buttonUrlSection3":   optStr(200),
	}
}

func medicalSkinExpertPageSchema() *Schema {
	return &Schema{Name: "medischeSkinExpertPage", Fields: expertPageFields()}
}

func orthomolecularTherapistPageSchema() *Schema {
	return &Schema{Name: "orthomolecularTherapistPage", Fields: expertPageFields()}
}

func ourTeamPageSchema() *Schema {
	return &Schema{
		Name: "onsTeamPagina",
		Fields: map[string]Field{
			"id":            idField(),
			"title":         str(100),
			"subtitle":      str(200),
			"description":   str(1000),
			"buttonText":    optStr(50),
			"buttonUrl":     str(200),
			"image":         media(),
			"teamTitleSmall": str(100),
			"teamTitleBig":   str(100),
			"teamMembers": array(object(map[string]Field{
				"id":         idField(),
				"name":       str(100),
				"profession": str(100),
				"image":      media(),
			})),
			"nextButtonText":     str(50),
			"previousButtonText": str(50),
		},
	}
}

func treatmentSchema() *Schema {
	return &Schema{
		Name: "behandeling",
		Fields: map[string]Field{
			"id":   idField(),
			"slug": str(100),
			"category": UnionField{Alternatives: []Field{
				StringField{},
				object(map[string]Field{
					"id":   idField(),
					"name": str(100),
				}),
			}},
			"name":        str(100),
			"subtitle":    str(200),
			"description": str(1000),
			"isPopular":   optBool(),
			"duration":    num(),
			"price":       num(),
			"image":       media(),
			"subtitle2":   optStr(200),
			"description2": str(1000),
			"image2":      media(),
			"image3":      optMedia(),
			"beforeText":  optStr(200),
			"afterText":   optStr(200),
		},
	}
}

func treatmentsPageSchema() *Schema {
	return &Schema{
		Name: "behandelingenPagina",
		Fields: map[string]Field{
			"id":                          idField(),
			"title":                       optStr(100),
			"subtitle":                    optStr(200),
			"description":                 optStr(1000),
			"buttonText":                  optStr(50),
			"image":                       media(),
			"popularTreatmentTitleSmall":  str(100),
			"popularTreatmentTitleBig":    str(100),
			"similarTreatmentsTitleSmall": str(100),
			"similarTreatmentsTitleBig":   str(100),
			"allTreatmentsText":           str(100),
			"searchText":                  str(50),
			"bookTreatmentButtonText":     str(50),
			"bookTreatmentButtonUrl":      str(200),
		},
	}
}
