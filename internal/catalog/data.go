package catalog

import "github.com/rare-disease-dx/internal/domain"

// symptomData is the bundled symptom catalog, grouped by category.
var symptomData = []domain.Symptom{
	// Neurological
	{ID: "neuro_001", Name: "Severe headaches", Category: "Neurological", Severity: domain.SEVERE},
	{ID: "neuro_002", Name: "Memory loss", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_003", Name: "Seizures", Category: "Neurological", Severity: domain.SEVERE},
	{ID: "neuro_004", Name: "Muscle weakness", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_005", Name: "Tremors", Category: "Neurological", Severity: domain.MILD},
	{ID: "neuro_006", Name: "Balance problems", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_007", Name: "Speech difficulties", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_008", Name: "Vision problems", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_009", Name: "Hearing loss", Category: "Neurological", Severity: domain.MODERATE},
	{ID: "neuro_010", Name: "Cognitive decline", Category: "Neurological", Severity: domain.SEVERE},

	// Cardiovascular
	{ID: "cardio_001", Name: "Chest pain", Category: "Cardiovascular", Severity: domain.SEVERE},
	{ID: "cardio_002", Name: "Irregular heartbeat", Category: "Cardiovascular", Severity: domain.MODERATE},
	{ID: "cardio_003", Name: "Shortness of breath", Category: "Cardiovascular", Severity: domain.MODERATE},
	{ID: "cardio_004", Name: "Swelling in legs", Category: "Cardiovascular", Severity: domain.MILD},
	{ID: "cardio_005", Name: "High blood pressure", Category: "Cardiovascular", Severity: domain.MODERATE},
	{ID: "cardio_006", Name: "Heart palpitations", Category: "Cardiovascular", Severity: domain.MILD},
	{ID: "cardio_007", Name: "Syncope (fainting)", Category: "Cardiovascular", Severity: domain.SEVERE},
	{ID: "cardio_008", Name: "Cyanosis (blue skin)", Category: "Cardiovascular", Severity: domain.SEVERE},

	// Respiratory
	{ID: "resp_001", Name: "Chronic cough", Category: "Respiratory", Severity: domain.MODERATE},
	{ID: "resp_002", Name: "Wheezing", Category: "Respiratory", Severity: domain.MODERATE},
	{ID: "resp_003", Name: "Difficulty breathing", Category: "Respiratory", Severity: domain.SEVERE},
	{ID: "resp_004", Name: "Chest tightness", Category: "Respiratory", Severity: domain.MODERATE},
	{ID: "resp_005", Name: "Frequent respiratory infections", Category: "Respiratory", Severity: domain.MODERATE},
	{ID: "resp_006", Name: "Blood in sputum", Category: "Respiratory", Severity: domain.SEVERE},

	// Gastrointestinal
	{ID: "gi_001", Name: "Chronic diarrhea", Category: "Gastrointestinal", Severity: domain.MODERATE},
	{ID: "gi_002", Name: "Severe abdominal pain", Category: "Gastrointestinal", Severity: domain.SEVERE},
	{ID: "gi_003", Name: "Nausea and vomiting", Category: "Gastrointestinal", Severity: domain.MODERATE},
	{ID: "gi_004", Name: "Weight loss", Category: "Gastrointestinal", Severity: domain.MODERATE},
	{ID: "gi_005", Name: "Difficulty swallowing", Category: "Gastrointestinal", Severity: domain.MODERATE},
	{ID: "gi_006", Name: "Bloating", Category: "Gastrointestinal", Severity: domain.MILD},
	{ID: "gi_007", Name: "Blood in stool", Category: "Gastrointestinal", Severity: domain.SEVERE},
	{ID: "gi_008", Name: "Severe constipation", Category: "Gastrointestinal", Severity: domain.MODERATE},

	// Musculoskeletal
	{ID: "musculo_001", Name: "Joint pain", Category: "Musculoskeletal", Severity: domain.MODERATE},
	{ID: "musculo_002", Name: "Muscle cramps", Category: "Musculoskeletal", Severity: domain.MILD},
	{ID: "musculo_003", Name: "Bone pain", Category: "Musculoskeletal", Severity: domain.MODERATE},
	{ID: "musculo_004", Name: "Stiffness", Category: "Musculoskeletal", Severity: domain.MILD},
	{ID: "musculo_005", Name: "Muscle atrophy", Category: "Musculoskeletal", Severity: domain.SEVERE},
	{ID: "musculo_006", Name: "Joint swelling", Category: "Musculoskeletal", Severity: domain.MODERATE},
	{ID: "musculo_007", Name: "Limited mobility", Category: "Musculoskeletal", Severity: domain.MODERATE},

	// Dermatological
	{ID: "dermato_001", Name: "Unusual rash", Category: "Dermatological", Severity: domain.MODERATE},
	{ID: "dermato_002", Name: "Skin discoloration", Category: "Dermatological", Severity: domain.MILD},
	{ID: "dermato_003", Name: "Excessive bruising", Category: "Dermatological", Severity: domain.MODERATE},
	{ID: "dermato_004", Name: "Hair loss", Category: "Dermatological", Severity: domain.MILD},
	{ID: "dermato_005", Name: "Skin lesions", Category: "Dermatological", Severity: domain.MODERATE},
	{ID: "dermato_006", Name: "Itching", Category: "Dermatological", Severity: domain.MILD},

	// Endocrine
	{ID: "endo_001", Name: "Extreme fatigue", Category: "Endocrine", Severity: domain.MODERATE},
	{ID: "endo_002", Name: "Unexplained weight gain", Category: "Endocrine", Severity: domain.MODERATE},
	{ID: "endo_003", Name: "Temperature sensitivity", Category: "Endocrine", Severity: domain.MILD},
	{ID: "endo_004", Name: "Excessive thirst", Category: "Endocrine", Severity: domain.MODERATE},
	{ID: "endo_005", Name: "Frequent urination", Category: "Endocrine", Severity: domain.MILD},
	{ID: "endo_006", Name: "Growth abnormalities", Category: "Endocrine", Severity: domain.SEVERE},

	// Hematological
	{ID: "hemato_001", Name: "Easy bruising", Category: "Hematological", Severity: domain.MILD},
	{ID: "hemato_002", Name: "Prolonged bleeding", Category: "Hematological", Severity: domain.SEVERE},
	{ID: "hemato_003", Name: "Pale skin", Category: "Hematological", Severity: domain.MILD},
	{ID: "hemato_004", Name: "Enlarged lymph nodes", Category: "Hematological", Severity: domain.MODERATE},
	{ID: "hemato_005", Name: "Frequent infections", Category: "Hematological", Severity: domain.MODERATE},

	// Renal
	{ID: "renal_001", Name: "Blood in urine", Category: "Renal", Severity: domain.SEVERE},
	{ID: "renal_002", Name: "Kidney pain", Category: "Renal", Severity: domain.MODERATE},
	{ID: "renal_003", Name: "Protein in urine", Category: "Renal", Severity: domain.MODERATE},
	{ID: "renal_004", Name: "Decreased urine output", Category: "Renal", Severity: domain.SEVERE},

	// Ophthalmological
	{ID: "ophthal_001", Name: "Night blindness", Category: "Ophthalmological", Severity: domain.MODERATE},
	{ID: "ophthal_002", Name: "Double vision", Category: "Ophthalmological", Severity: domain.MODERATE},
	{ID: "ophthal_003", Name: "Eye pain", Category: "Ophthalmological", Severity: domain.MILD},
	{ID: "ophthal_004", Name: "Light sensitivity", Category: "Ophthalmological", Severity: domain.MILD},

	// General
	{ID: "general_001", Name: "Fever", Category: "General", Severity: domain.MILD},
	{ID: "general_002", Name: "Night sweats", Category: "General", Severity: domain.MILD},
	{ID: "general_003", Name: "Malaise", Category: "General", Severity: domain.MILD},
	{ID: "general_004", Name: "Sleep disturbances", Category: "General", Severity: domain.MILD},
	{ID: "general_005", Name: "Mood changes", Category: "General", Severity: domain.MILD},
}

// conditionData is the bundled condition catalog. Symptom signatures reference symptomData ids.
var conditionData = []domain.Condition{
	{
		ID:             "disease_001",
		Name:           "Huntington's Disease",
		Description:    "A progressive neurodegenerative disorder affecting movement, cognition, and emotional state.",
		SymptomIDs:     []string{"neuro_003", "neuro_004", "neuro_005", "neuro_007", "neuro_010", "musculo_001", "general_004"},
		Prevalence:     "3-7 per 100,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"HTT gene mutation", "CAG repeat expansion"},
		AgeGroups:      []string{"30-50", "50+"},
		MoreInfo:       "Huntington's disease is caused by a mutation in the HTT gene. It typically manifests in mid-life and progresses over 15-20 years.",
	},
	{
		ID:             "disease_002",
		Name:           "Duchenne Muscular Dystrophy",
		Description:    "A genetic disorder characterized by progressive muscle degeneration and weakness.",
		SymptomIDs:     []string{"neuro_004", "musculo_005", "musculo_007", "cardio_003", "resp_003"},
		Prevalence:     "1 in 3,500-5,000 boys",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"DMD gene mutation", "Dystrophin deficiency"},
		AgeGroups:      []string{"0-5", "6-12"},
		MoreInfo:       "DMD primarily affects boys and is caused by mutations in the DMD gene. Symptoms typically appear in early childhood.",
	},
	{
		ID:             "disease_003",
		Name:           "Fabry Disease",
		Description:    "A rare genetic disorder affecting the breakdown of fatty substances in cells.",
		SymptomIDs:     []string{"dermato_001", "neuro_001", "gi_002", "cardio_001", "renal_001", "renal_002"},
		Prevalence:     "1 in 40,000-117,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"GLA gene mutation", "Alpha-galactosidase A deficiency"},
		AgeGroups:      []string{"13-18", "19-29", "30-50"},
		MoreInfo:       "Fabry disease is X-linked and caused by mutations in the GLA gene, leading to accumulation of globotriaosylceramide.",
	},
	{
		ID:             "disease_004",
		Name:           "Wilson's Disease",
		Description:    "A rare inherited disorder causing copper to accumulate in vital organs.",
		SymptomIDs:     []string{"neuro_005", "neuro_006", "gi_001", "gi_003", "dermato_002", "general_001"},
		Prevalence:     "1 in 30,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"ATP7B gene mutation", "Copper transport defect"},
		AgeGroups:      []string{"6-12", "13-18", "19-29"},
		MoreInfo:       "Wilson's disease affects copper metabolism and can cause liver disease, neurological problems, and psychiatric symptoms.",
	},
	{
		ID:             "disease_005",
		Name:           "Gaucher Disease",
		Description:    "A genetic disorder affecting the breakdown of fatty substances.",
		SymptomIDs:     []string{"endo_001", "gi_004", "hemato_001", "hemato_004", "musculo_003", "cardio_005"},
		Prevalence:     "1 in 50,000-100,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"GBA gene mutation", "Glucocerebrosidase deficiency"},
		AgeGroups:      []string{"0-5", "6-12", "13-18", "19-29"},
		MoreInfo:       "Gaucher disease is caused by mutations in the GBA gene and has three main types with varying severity.",
	},
	{
		ID:             "disease_006",
		Name:           "Marfan Syndrome",
		Description:    "A connective tissue disorder affecting the heart, blood vessels, bones, and joints.",
		SymptomIDs:     []string{"cardio_001", "cardio_002", "musculo_001", "musculo_006", "ophthal_002", "neuro_008"},
		Prevalence:     "1 in 5,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"FBN1 gene mutation", "Fibrillin-1 defect"},
		AgeGroups:      []string{"0-5", "6-12", "13-18", "19-29"},
		MoreInfo:       "Marfan syndrome affects connective tissue and can cause life-threatening cardiovascular complications.",
	},
	{
		ID:             "disease_007",
		Name:           "Pompe Disease",
		Description:    "A rare genetic disorder affecting muscle function due to glycogen buildup.",
		SymptomIDs:     []string{"neuro_004", "resp_003", "cardio_003", "musculo_005", "endo_001"},
		Prevalence:     "1 in 40,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"GAA gene mutation", "Alpha-glucosidase deficiency"},
		AgeGroups:      []string{"0-5", "6-12", "13-18", "30-50"},
		MoreInfo:       "Pompe disease has infantile and late-onset forms, both caused by GAA gene mutations affecting glycogen breakdown.",
	},
	{
		ID:             "disease_008",
		Name:           "Sickle Cell Disease",
		Description:    "A genetic blood disorder causing misshapen red blood cells.",
		SymptomIDs:     []string{"hemato_003", "musculo_003", "gi_002", "resp_006", "general_001", "endo_001"},
		Prevalence:     "1 in 365 African Americans",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"HBB gene mutation", "Hemoglobin S"},
		AgeGroups:      []string{"0-5", "6-12", "13-18", "19-29"},
		MoreInfo:       "Sickle cell disease is caused by a mutation in the HBB gene and affects hemoglobin structure.",
	},
	{
		ID:             "disease_009",
		Name:           "Cystic Fibrosis",
		Description:    "A genetic disorder affecting the lungs and digestive system.",
		SymptomIDs:     []string{"resp_001", "resp_003", "resp_005", "gi_001", "gi_005", "gi_004"},
		Prevalence:     "1 in 2,500-3,500",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"CFTR gene mutation", "Chloride channel defect"},
		AgeGroups:      []string{"0-5", "6-12", "13-18", "19-29"},
		MoreInfo:       "Cystic fibrosis is caused by mutations in the CFTR gene affecting chloride transport in cells.",
	},
	{
		ID:             "disease_010",
		Name:           "Tay-Sachs Disease",
		Description:    "A fatal genetic disorder affecting nerve cells in the brain and spinal cord.",
		SymptomIDs:     []string{"neuro_003", "neuro_004", "neuro_008", "neuro_009", "neuro_010", "general_004"},
		Prevalence:     "1 in 320,000",
		Rarity:         domain.ULTRA_RARE,
		GeneticMarkers: []string{"HEXA gene mutation", "Beta-hexosaminidase A deficiency"},
		AgeGroups:      []string{"0-5"},
		MoreInfo:       "Tay-Sachs disease is caused by HEXA gene mutations and primarily affects infants of Ashkenazi Jewish descent.",
	},
	{
		ID:             "disease_011",
		Name:           "Niemann-Pick Disease",
		Description:    "A group of inherited metabolic disorders affecting lipid storage.",
		SymptomIDs:     []string{"endo_001", "neuro_010", "hemato_004", "resp_003", "gi_004", "dermato_002"},
		Prevalence:     "1 in 250,000",
		Rarity:         domain.ULTRA_RARE,
		GeneticMarkers: []string{"SMPD1 gene mutation", "Sphingomyelinase deficiency"},
		AgeGroups:      []string{"0-5", "6-12", "13-18"},
		MoreInfo:       "Niemann-Pick disease has several types, all affecting lipid metabolism in cells.",
	},
	{
		ID:             "disease_012",
		Name:           "Ehlers-Danlos Syndrome",
		Description:    "A group of disorders affecting connective tissues.",
		SymptomIDs:     []string{"musculo_001", "musculo_006", "dermato_003", "dermato_001", "cardio_002", "gi_002"},
		Prevalence:     "1 in 5,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"COL5A1 gene mutation", "Collagen defect"},
		AgeGroups:      []string{"6-12", "13-18", "19-29", "30-50"},
		MoreInfo:       "Ehlers-Danlos syndrome affects collagen production and can cause hypermobile joints and fragile skin.",
	},
	{
		ID:             "disease_013",
		Name:           "Prader-Willi Syndrome",
		Description:    "A genetic disorder affecting development and causing insatiable appetite.",
		SymptomIDs:     []string{"endo_002", "endo_004", "neuro_004", "endo_006", "general_004", "general_005"},
		Prevalence:     "1 in 15,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"15q11-q13 deletion", "Paternal chromosome 15"},
		AgeGroups:      []string{"0-5", "6-12", "13-18"},
		MoreInfo:       "Prader-Willi syndrome is caused by loss of function of genes in chromosome 15.",
	},
	{
		ID:             "disease_014",
		Name:           "Rett Syndrome",
		Description:    "A rare neurological disorder affecting brain development.",
		SymptomIDs:     []string{"neuro_007", "neuro_010", "neuro_003", "musculo_004", "general_004", "resp_003"},
		Prevalence:     "1 in 10,000 females",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"MECP2 gene mutation", "X-linked"},
		AgeGroups:      []string{"0-5", "6-12"},
		MoreInfo:       "Rett syndrome primarily affects girls and is caused by mutations in the MECP2 gene.",
	},
	{
		ID:             "disease_015",
		Name:           "Angelman Syndrome",
		Description:    "A neuro-genetic disorder causing developmental delays and seizures.",
		SymptomIDs:     []string{"neuro_003", "neuro_010", "neuro_006", "general_005", "general_004", "musculo_004"},
		Prevalence:     "1 in 12,000-20,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"UBE3A gene mutation", "Maternal chromosome 15"},
		AgeGroups:      []string{"0-5", "6-12", "13-18"},
		MoreInfo:       "Angelman syndrome is caused by loss of function of the UBE3A gene on maternal chromosome 15.",
	},
	{
		ID:             "disease_016",
		Name:           "Spinal Muscular Atrophy",
		Description:    "A genetic disorder affecting motor neurons and causing muscle weakness.",
		SymptomIDs:     []string{"neuro_004", "musculo_005", "resp_003", "gi_005", "musculo_007", "endo_001"},
		Prevalence:     "1 in 10,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"SMN1 gene mutation", "Survival motor neuron protein"},
		AgeGroups:      []string{"0-5", "6-12", "13-18"},
		MoreInfo:       "SMA is caused by mutations in the SMN1 gene and has four main types of varying severity.",
	},
	{
		ID:             "disease_017",
		Name:           "Fragile X Syndrome",
		Description:    "A genetic disorder causing intellectual disability and behavioral challenges.",
		SymptomIDs:     []string{"neuro_010", "general_005", "neuro_007", "dermato_004", "general_004", "neuro_002"},
		Prevalence:     "1 in 4,000 males, 1 in 8,000 females",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"FMR1 gene mutation", "CGG repeat expansion"},
		AgeGroups:      []string{"0-5", "6-12", "13-18"},
		MoreInfo:       "Fragile X syndrome is caused by mutations in the FMR1 gene and is X-linked.",
	},
	{
		ID:             "disease_018",
		Name:           "Phenylketonuria (PKU)",
		Description:    "A genetic disorder affecting the breakdown of the amino acid phenylalanine.",
		SymptomIDs:     []string{"neuro_010", "dermato_002", "dermato_004", "general_005", "neuro_003", "endo_006"},
		Prevalence:     "1 in 10,000-15,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"PAH gene mutation", "Phenylalanine hydroxylase deficiency"},
		AgeGroups:      []string{"0-5", "6-12"},
		MoreInfo:       "PKU is caused by mutations in the PAH gene and requires lifelong dietary management.",
	},
	{
		ID:             "disease_019",
		Name:           "Hereditary Angioedema",
		Description:    "A rare genetic disorder causing episodes of swelling.",
		SymptomIDs:     []string{"dermato_001", "resp_003", "gi_002", "gi_003", "general_001", "cardio_007"},
		Prevalence:     "1 in 50,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"C1NH gene mutation", "C1 esterase inhibitor deficiency"},
		AgeGroups:      []string{"6-12", "13-18", "19-29", "30-50"},
		MoreInfo:       "Hereditary angioedema is caused by C1NH gene mutations affecting complement regulation.",
	},
	{
		ID:             "disease_020",
		Name:           "Alpha-1 Antitrypsin Deficiency",
		Description:    "A genetic disorder affecting the lungs and liver.",
		SymptomIDs:     []string{"resp_001", "resp_003", "resp_002", "gi_004", "endo_001", "general_001"},
		Prevalence:     "1 in 2,000-5,000",
		Rarity:         domain.RARE,
		GeneticMarkers: []string{"SERPINA1 gene mutation", "Alpha-1 antitrypsin protein"},
		AgeGroups:      []string{"19-29", "30-50", "50+"},
		MoreInfo:       "Alpha-1 antitrypsin deficiency is caused by SERPINA1 gene mutations and can cause lung and liver disease.",
	},
}
