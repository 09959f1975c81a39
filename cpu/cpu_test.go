package cpu_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

func assemble(src string) []cpu.Word {
	res, err := assembler.New().Assemble(strings.NewReader(src), io.Discard)
	Expect(err).NotTo(HaveOccurred())
	Expect(res.Diagnostics()).To(BeEmpty())
	return res.Words
}

var _ = Describe("ALU", func() {
	const d, a, m = 7, 3, 5

	DescribeTable("computes every comp mnemonic",
		func(mnemonic string, want int) {
			code, ok := assembler.CompCode(mnemonic)
			Expect(ok).To(BeTrue())

			inst := cpu.Decode(cpu.EncodeCompute(code, 0, 0))
			y := cpu.Word(a)
			if inst.UsesMemory() {
				y = m
			}
			Expect(cpu.ALU(d, y, code&0x3F).Int()).To(Equal(int16(want)))
		},
		Entry("0", "0", 0),
		Entry("1", "1", 1),
		Entry("-1", "-1", -1),
		Entry("D", "D", d),
		Entry("A", "A", a),
		Entry("!D", "!D", ^d),
		Entry("!A", "!A", ^a),
		Entry("-D", "-D", -d),
		Entry("-A", "-A", -a),
		Entry("D+1", "D+1", d+1),
		Entry("A+1", "A+1", a+1),
		Entry("D-1", "D-1", d-1),
		Entry("A-1", "A-1", a-1),
		Entry("D+A", "D+A", d+a),
		Entry("D-A", "D-A", d-a),
		Entry("A-D", "A-D", a-d),
		Entry("D&A", "D&A", d&a),
		Entry("D|A", "D|A", d|a),
		Entry("M", "M", m),
		Entry("!M", "!M", ^m),
		Entry("-M", "-M", -m),
		Entry("M+1", "M+1", m+1),
		Entry("M-1", "M-1", m-1),
		Entry("D+M", "D+M", d+m),
		Entry("D-M", "D-M", d-m),
		Entry("M-D", "M-D", m-d),
		Entry("D&M", "D&M", d&m),
		Entry("D|M", "D|M", d|m),
	)
})

var _ = Describe("Decode", func() {
	It("should split a compute word into its fields", func() {
		inst := cpu.Decode(0b1111010101111110)
		Expect(inst.Compute).To(BeTrue())
		Expect(inst.Comp).To(Equal(uint16(0b1010101)))
		Expect(inst.Dest).To(Equal(cpu.DestA | cpu.DestD | cpu.DestM))
		Expect(inst.Jump).To(Equal(cpu.JumpLT | cpu.JumpEQ))
		Expect(inst.UsesMemory()).To(BeTrue())
	})

	It("should keep the value of an address word", func() {
		inst := cpu.Decode(0x7FFF)
		Expect(inst.Compute).To(BeFalse())
		Expect(inst.Value).To(Equal(cpu.Word(0x7FFF)))
	})

	It("should invert EncodeCompute", func() {
		w := cpu.EncodeCompute(0b0000010, 0b010, 0b101)
		Expect(w.String()).To(Equal("1110000010010101"))
		inst := cpu.Decode(w)
		Expect([]uint16{inst.Comp, inst.Dest, inst.Jump}).To(Equal([]uint16{0b0000010, 0b010, 0b101}))
	})
})

var _ = Describe("CPU", func() {
	var c *cpu.CPU

	BeforeEach(func() {
		c = cpu.New()
	})

	It("should run the add program", func() {
		var words []cpu.Word
		for _, s := range []string{
			"0000000000000010",
			"1110110000010000",
			"0000000000000011",
			"1110000010010000",
			"0000000000000000",
			"1110001100001000",
		} {
			w, err := cpu.ParseWord(s)
			Expect(err).NotTo(HaveOccurred())
			words = append(words, w)
		}
		Expect(c.Load(words)).To(Succeed())

		cycles, err := c.Run(100)
		Expect(err).NotTo(HaveOccurred())
		Expect(cycles).To(Equal(6))
		Expect(c.RAM[0]).To(Equal(cpu.Word(5)))
		Expect(c.Running).To(BeFalse())
	})

	DescribeTable("should compute the maximum of R0 and R1",
		func(r0, r1, want int) {
			Expect(c.Load(assemble(`@R0
D=M
@R1
D=D-M
@FIRST
D;JGT
@R1
D=M
@R2
M=D
@END
0;JMP
(FIRST)
@R0
D=M
@R2
M=D
(END)
@END
0;JMP
`))).To(Succeed())
			c.RAM[0] = cpu.Word(int16(r0))
			c.RAM[1] = cpu.Word(int16(r1))

			_, err := c.Run(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.RAM[2].Int()).To(Equal(int16(want)))
		},
		Entry("first larger", 9, 4, 9),
		Entry("second larger", 4, 9, 9),
		Entry("equal", 6, 6, 6),
		Entry("negative", -3, -8, -3),
	)

	It("should sum 1..n using variables", func() {
		Expect(c.Load(assemble(`// R1 = 1 + 2 + ... + R0
@i
M=1
@sum
M=0
(LOOP)
@i
D=M
@R0
D=D-M
@STOP
D;JGT
@i
D=M
@sum
M=D+M
@i
M=M+1
@LOOP
0;JMP
(STOP)
@sum
D=M
@R1
M=D
(END)
@END
0;JMP
`))).To(Succeed())
		c.RAM[0] = 10

		_, err := c.Run(10000)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.RAM[1]).To(Equal(cpu.Word(55)))
		Expect(c.RAM[16]).To(Equal(cpu.Word(11)))
		Expect(c.RAM[17]).To(Equal(cpu.Word(55)))
	})

	It("should address M with A from before the instruction", func() {
		Expect(c.Load(assemble("@5\nAM=M+1\n"))).To(Succeed())
		c.RAM[5] = 41

		_, err := c.Run(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.RAM[5]).To(Equal(cpu.Word(42)))
		Expect(c.A).To(Equal(cpu.Word(42)))
	})

	It("should stop at the end loop idiom", func() {
		Expect(c.Load(assemble("@7\nD=A\n(END)\n@END\n0;JMP\n"))).To(Succeed())

		cycles, err := c.Run(1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(cycles).To(Equal(4))
		Expect(c.D).To(Equal(cpu.Word(7)))
		Expect(c.PC).To(Equal(uint16(2)))
	})

	It("should stop when a jump leaves ROM", func() {
		Expect(c.Load(assemble("D;JGT\nD=1\n@0\nA=-1;JMP\n"))).To(Succeed())

		cycles, err := c.Run(100)
		Expect(err).NotTo(HaveOccurred())
		Expect(cycles).To(Equal(5))
		Expect(c.PC).To(Equal(uint16(0xFFFF)))
		Expect(c.Running).To(BeFalse())
	})

	It("should report the cycle limit for other loops", func() {
		Expect(c.Load(assemble("(LOOP)\n@LOOP\nD=D+1\n@LOOP\n0;JMP\n"))).To(Succeed())

		cycles, err := c.Run(100)
		Expect(err).To(MatchError(cpu.ErrCycleLimit))
		Expect(cycles).To(Equal(100))
		Expect(c.Running).To(BeTrue())
	})

	It("should fail on unmapped memory", func() {
		Expect(c.Load(assemble("@30000\nD=M\n"))).To(Succeed())

		_, err := c.Run(10)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unmapped"))
	})

	It("should reject oversized programs", func() {
		Expect(c.Load(make([]cpu.Word, cpu.ROMSize+1))).To(MatchError(cpu.ErrProgramSize))
	})

	It("should dump registers and RAM", func() {
		Expect(c.Load(assemble("@5\nD=A\n@0\nM=D\n"))).To(Succeed())
		_, err := c.Run(10)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		c.Dump(&buf, []uint16{0, 30000})
		Expect(buf.String()).To(ContainSubstring("0000000000000101"))
		Expect(buf.String()).To(ContainSubstring("unmapped"))
	})
})

var _ = Describe("ParseHack", func() {
	It("should read words and skip empty lines", func() {
		words, err := cpu.ParseHack(strings.NewReader("0000000000000010\r\n\n1110110000010000\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(Equal([]cpu.Word{2, 0b1110110000010000}))
	})

	It("should report the offending line", func() {
		_, err := cpu.ParseHack(strings.NewReader("0000000000000010\n00000000000000102\n"))
		Expect(err).To(MatchError(ContainSubstring("line 2")))
	})
})
