package machine

import (
	"testing"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/data"
	"github.com/jonathanlim222/uplc/uplc"
)

func dataTerm(d *data.Data) *uplc.Term { return uplc.NewConstant(uplc.NewData(d)) }

func TestIDataUnIDataRoundTrips(t *testing.T) {
	term := applyBuiltin(builtin.UnIData, applyBuiltin(builtin.IData, intTerm(123)))
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Value.Constant.Integer.Int64(); got != 123 {
		t.Errorf("unIData(iData(123)) = %d; want 123", got)
	}
}

func TestBDataUnBDataRoundTrips(t *testing.T) {
	term := applyBuiltin(builtin.UnBData, applyBuiltin(builtin.BData, bsTerm([]byte("hi"))))
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Value.Constant.ByteString); got != "hi" {
		t.Errorf("unBData(bData(\"hi\")) = %q; want %q", got, "hi")
	}
}

func TestUnBDataOnWrongVariantIsFatal(t *testing.T) {
	term := applyBuiltin(builtin.UnBData, dataTerm(data.Int(intConst(1).Integer)))
	if _, err := run(t, term); err == nil {
		t.Errorf("expected an error projecting unBData out of an Integer Data node")
	}
}

func TestEqualsDataReflexiveAndDistinguishing(t *testing.T) {
	a := data.Constr(0, []*data.Data{data.Bytes([]byte("x"))})
	b := data.Constr(0, []*data.Data{data.Bytes([]byte("x"))})
	c := data.Constr(1, []*data.Data{data.Bytes([]byte("x"))})

	res, err := run(t, applyBuiltin(builtin.EqualsData, dataTerm(a), dataTerm(b)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Value.Constant.Bool {
		t.Errorf("equalsData(a,b) = false; want true")
	}

	res2, err := run(t, applyBuiltin(builtin.EqualsData, dataTerm(a), dataTerm(c)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res2.Value.Constant.Bool {
		t.Errorf("equalsData(a,c) = true; want false")
	}
}

func TestChooseDataSelectsIntegerBranch(t *testing.T) {
	term := applyBuiltin(builtin.ChooseData,
		dataTerm(data.Int(intConst(1).Integer)),
		intTerm(100), intTerm(200), intTerm(300), intTerm(400), intTerm(500),
	)
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Value.Constant.Integer.Int64(); got != 400 {
		t.Errorf("chooseData(Integer, ...) = %d; want 400 (the Integer-kind branch)", got)
	}
}

func TestSerialiseDataProducesNonEmptyOutput(t *testing.T) {
	term := applyBuiltin(builtin.SerialiseData, dataTerm(data.Int(intConst(7).Integer)))
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Value.Constant.ByteString) == 0 {
		t.Errorf("serialiseData produced empty output")
	}
}
