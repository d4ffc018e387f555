package models

// Bank is one entry of the bank directory. Values are never mutated after
// parsing; a refetch replaces the whole collection.
type Bank struct {
	BIC             string  `json:"bic" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	NameInEnglish   *string `json:"nameInEnglish,omitempty"`
	RegistryNumber  *string `json:"registryNumber,omitempty"`
	AddressCombined *string `json:"addressCombined,omitempty"`
}
