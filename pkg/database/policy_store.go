package database

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

var ErrPolicyManagerNotInitialized = errors.New("policy data manager not initialized")

// PolicyStore exposes the per-guild anti-spam configuration stored in the
// "antispam_policies" collection. It satisfies antispam.PolicySource.
type PolicyStore struct {
	dm *DataManager[models.AntiSpamPolicy]
}

// NewPolicyStore creates a PolicyStore backed by the global policy DataManager
func NewPolicyStore() (*PolicyStore, error) {
	if GlobalPolicyDM == nil {
		return nil, ErrPolicyManagerNotInitialized
	}
	return &PolicyStore{dm: GlobalPolicyDM}, nil
}

// Policy returns the stored configuration for a guild. Guilds without a
// stored document get the defaults, so a guild admin sees real values before
// ever touching /antispam.
func (ps *PolicyStore) Policy(guildID string) (*models.AntiSpamPolicy, error) {
	if ps == nil || ps.dm == nil {
		return models.DefaultAntiSpamPolicy(guildID), nil
	}
	policy, err := ps.dm.Get(bson.M{"guildId": guildID})
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return models.DefaultAntiSpamPolicy(guildID), nil
	}
	return policy, nil
}

// Save validates and persists a guild policy
func (ps *PolicyStore) Save(policy *models.AntiSpamPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	_, err := ps.dm.Set(bson.M{"guildId": policy.GuildID}, policy)
	if err != nil {
		logger.Error(fmt.Sprintf("Error guardando la política de %s: %v", policy.GuildID, err), "PolicyStore")
	}
	return err
}

// Update loads the guild policy, applies mutate and saves the result
func (ps *PolicyStore) Update(guildID string, mutate func(*models.AntiSpamPolicy)) (*models.AntiSpamPolicy, error) {
	policy, err := ps.Policy(guildID)
	if err != nil {
		return nil, err
	}
	mutate(policy)
	if err := ps.Save(policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// Delete removes the stored policy so the guild falls back to defaults
func (ps *PolicyStore) Delete(guildID string) error {
	return ps.dm.Delete(bson.M{"guildId": guildID})
}
