package sos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carepulse/internal/common"
	"carepulse/internal/common/mocks"
)

func testConfig() Config {
	return Config{
		DefaultCountryCode: "+91",
		LocationTimeout:    100 * time.Millisecond,
		RelayAPIKey:        "test-key",
		RelayDeviceID:      "device-1",
	}
}

func TestFanout_PerDestinationIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	f := NewFanout(signal, nil, testConfig())

	signal.EXPECT().
		CurrentCoordinates(gomock.Any(), gomock.Any()).
		Return(&common.Coordinates{Lat: 12.9716, Lon: 77.5946}, nil)

	signal.EXPECT().SMSAvailable().Return(true).Times(3)

	// destinations 1 and 3 succeed via primary, 2 fails everywhere
	signal.EXPECT().
		SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dests []string, _ string) error {
			if dests[0] == "+912222222222" {
				return errors.New("composer dismissed")
			}
			return nil
		}).
		Times(3)
	signal.EXPECT().
		SendRelaySMS(gomock.Any(), "test-key", "device-1", "+912222222222", gomock.Any()).
		Return(errors.New("relay 500"))
	signal.EXPECT().
		DiscoverRelayTarget(gomock.Any(), "test-key").
		Return("device-2", nil)
	signal.EXPECT().
		SendRelaySMS(gomock.Any(), "test-key", "device-2", "+912222222222", gomock.Any()).
		Return(errors.New("relay 500 again"))

	report := f.Send(context.Background(), []string{"1111111111", "2222222222", "3333333333"}, Options{UserName: "Aarav"})

	assert.Equal(t, []string{"+911111111111", "+913333333333"}, report.Sent)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, "+912222222222", report.Failed[0].Number)
	assert.Equal(t, StatusDiscoveryFailed, report.Failed[0].Status)
	assert.Contains(t, report.Failed[0].Reason, "relay 500 again")
	assert.NotNil(t, report.Coords)
}

func TestFanout_DiscoveryRetrySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	f := NewFanout(signal, nil, testConfig())

	signal.EXPECT().
		CurrentCoordinates(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("permission denied"))
	signal.EXPECT().SMSAvailable().Return(false)

	// first relay attempt fails, rediscovered target succeeds; exactly two
	// relay attempts, never a third
	signal.EXPECT().
		SendRelaySMS(gomock.Any(), "test-key", "device-1", "+911111111111", gomock.Any()).
		Return(errors.New("device offline"))
	signal.EXPECT().
		DiscoverRelayTarget(gomock.Any(), "test-key").
		Return("device-2", nil)
	signal.EXPECT().
		SendRelaySMS(gomock.Any(), "test-key", "device-2", "+911111111111", gomock.Any()).
		Return(nil)

	report := f.Send(context.Background(), []string{"1111111111"}, Options{UserName: "Aarav"})

	assert.Equal(t, []string{"+911111111111"}, report.Sent)
	assert.Empty(t, report.Failed)
}

func TestFanout_DiscoveryFindsNoTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	f := NewFanout(signal, nil, testConfig())

	signal.EXPECT().CurrentCoordinates(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	signal.EXPECT().SMSAvailable().Return(false)
	signal.EXPECT().
		SendRelaySMS(gomock.Any(), "test-key", "device-1", "+911111111111", gomock.Any()).
		Return(errors.New("device offline"))
	signal.EXPECT().DiscoverRelayTarget(gomock.Any(), "test-key").Return("", nil)

	report := f.Send(context.Background(), []string{"1111111111"}, Options{UserName: "Aarav"})

	assert.Empty(t, report.Sent)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, StatusFallbackFailed, report.Failed[0].Status)
	assert.Contains(t, report.Failed[0].Reason, "device offline")
}

func TestFanout_MissingRelayCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	cfg := testConfig()
	cfg.RelayAPIKey = ""
	f := NewFanout(signal, nil, cfg)

	signal.EXPECT().CurrentCoordinates(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	signal.EXPECT().SMSAvailable().Return(false)
	// no relay call is ever attempted

	report := f.Send(context.Background(), []string{"1111111111"}, Options{UserName: "Aarav"})

	assert.Empty(t, report.Sent)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, StatusFallbackFailed, report.Failed[0].Status)
	assert.Contains(t, report.Failed[0].Reason, "relay credentials not configured")
}

func TestFanout_LocationUnavailableDegradesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	f := NewFanout(signal, nil, testConfig())

	signal.EXPECT().CurrentCoordinates(gomock.Any(), gomock.Any()).Return(nil, errors.New("gps timeout"))
	signal.EXPECT().SMSAvailable().Return(true)
	signal.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report := f.Send(context.Background(), []string{"1111111111"}, Options{UserName: "Aarav"})

	assert.Equal(t, []string{"+911111111111"}, report.Sent)
	assert.Nil(t, report.Coords)
	assert.Contains(t, report.Message, "Location unknown")
}

func TestFanout_RecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signal := mocks.NewMockDeviceSignal(ctrl)
	audit := mocks.NewMockDeliveryLog(ctrl)
	f := NewFanout(signal, audit, testConfig())

	signal.EXPECT().CurrentCoordinates(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	signal.EXPECT().SMSAvailable().Return(true)
	signal.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	audit.EXPECT().
		RecordSosOutcome(gomock.Any(), gomock.Any(), "+911111111111", ChannelSMS, "sent", "").
		Return(nil)

	report := f.Send(context.Background(), []string{"1111111111"}, Options{UserName: "Aarav"})
	assert.Equal(t, []string{"+911111111111"}, report.Sent)
}
